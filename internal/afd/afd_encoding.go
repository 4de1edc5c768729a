package afd

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// EncodeContent converts file content into the requested byte encoding.
// Encoding is always explicit; ISO-8859-1 fails on any rune it cannot
// represent instead of silently transliterating.
func EncodeContent(content string, encoding string) ([]byte, error) {
	switch encoding {
	case EncodingUTF8:
		return []byte(content), nil
	case EncodingLatin:
		out := make([]byte, 0, len(content))
		for _, r := range content {
			b, ok := charmap.ISO8859_1.EncodeRune(r)
			if !ok {
				return nil, fmt.Errorf("afd: character %q cannot be represented in %s", r, EncodingLatin)
			}
			out = append(out, b)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}
