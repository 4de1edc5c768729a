package afd

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(t *testing.T) Input {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := func(d, h, m int) time.Time {
		return time.Date(2025, 3, d, h, m, 0, 0, loc)
	}

	return Input{
		Employer: Employer{
			IDType: "1",
			ID:     "12345678000195",
			Name:   "Padaria Modelo LTDA",
		},
		Period:      Period{Start: day(1, 0, 0), End: day(31, 0, 0)},
		GeneratedAt: day(31, 23, 45),
		Location:    loc,
		Punches: []Punch{
			{PIS: "12345678901", At: day(10, 8, 0)},
			{PIS: "12345678901", At: day(10, 17, 2)},
			{PIS: "98765432109", At: day(10, 8, 0)},
		},
		Adjustments: []Adjustment{
			{
				OriginalNSR: 2,
				OriginalAt:  day(10, 8, 0),
				AdjustedAt:  day(10, 8, 5),
				PIS:         "12345678901",
				Reason:      "Relogio adiantado",
				AdjustedBy:  "rh.maria",
				RecordedAt:  day(11, 9, 0),
			},
		},
		Inclusions: []Inclusion{
			{
				At:         day(12, 13, 0),
				PIS:        "98765432109",
				Reason:     "Falha no coletor",
				IncludedBy: "rh.maria",
				RecordedAt: day(12, 14, 0),
			},
		},
	}
}

func extractNSRs(content string) []int {
	var out []int
	for _, line := range splitLines(content) {
		v, _ := strconv.Atoi(line[:nsrWidth])
		out = append(out, v)
	}
	return out
}

func TestGenerate_NSRSequence(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)

	// header + 3 punches + 1 adjustment + 1 inclusion + trailer
	assert.Equal(t, 7, res.TotalRecords)

	nsrs := extractNSRs(res.Content)
	require.Len(t, nsrs, 7)
	for i, v := range nsrs {
		assert.Equal(t, i+1, v, "NSR must increment by exactly 1")
	}
}

func TestGenerate_PunchesChronological(t *testing.T) {
	in := testInput(t)
	// shuffle input order; output must still be chronological
	in.Punches[0], in.Punches[1] = in.Punches[1], in.Punches[0]

	res, err := Generate(in, EncodingUTF8)
	require.NoError(t, err)

	var prev time.Time
	for _, line := range splitLines(res.Content) {
		if line[nsrWidth:nsrWidth+1] != recordTypePunch {
			continue
		}
		at, err := parseDateTime(line[nsrWidth+1:nsrWidth+1+dateTimeWidth], in.Location)
		require.NoError(t, err)
		assert.False(t, at.Before(prev))
		prev = at
	}
}

func TestGenerate_MissingPIS(t *testing.T) {
	in := testInput(t)
	in.Punches[1].PIS = ""

	_, err := Generate(in, EncodingUTF8)
	assert.ErrorIs(t, err, ErrMissingPIS)
}

func TestGenerate_MissingEmployer(t *testing.T) {
	in := testInput(t)
	in.Employer.ID = ""

	_, err := Generate(in, EncodingUTF8)
	assert.ErrorIs(t, err, ErrMissingEmployerID)
}

func TestGenerate_ZeroInstant(t *testing.T) {
	in := testInput(t)
	in.Punches[0].At = time.Time{}

	_, err := Generate(in, EncodingUTF8)
	assert.ErrorIs(t, err, ErrZeroInstant)
}

func TestGenerate_Filename(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, "AFD_20250301_20250331.txt", res.Filename)
}

func TestRoundTrip(t *testing.T) {
	in := testInput(t)
	first, err := Generate(in, EncodingUTF8)
	require.NoError(t, err)

	doc, err := Parse(first.Content, in.Location)
	require.NoError(t, err)
	assert.Equal(t, "Padaria Modelo LTDA", doc.Employer.Name)
	assert.Len(t, doc.Punches, 3)
	assert.Len(t, doc.Adjustments, 1)
	assert.Len(t, doc.Inclusions, 1)

	second, err := Regenerate(doc, EncodingUTF8, in.Location)
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content, "round trip must be byte-identical")
}

func TestValidateStructure_Valid(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)

	report := ValidateStructure(res.Content)
	assert.True(t, report.Valid, "errors: %v", report.Errors)
}

func TestValidateStructure_NSRGap(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)

	lines := splitLines(res.Content)
	// drop a middle record, leaving a gap in the sequence
	broken := strings.Join(append(lines[:2:2], lines[3:]...), "\r\n") + "\r\n"

	report := ValidateStructure(broken)
	assert.False(t, report.Valid)
}

func TestValidateStructure_BadWidth(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)

	lines := splitLines(res.Content)
	lines[1] += "X"
	broken := strings.Join(lines, "\r\n") + "\r\n"

	report := ValidateStructure(broken)
	assert.False(t, report.Valid)
}

func TestValidateStructure_MissingTrailer(t *testing.T) {
	res, err := Generate(testInput(t), EncodingUTF8)
	require.NoError(t, err)

	lines := splitLines(res.Content)
	broken := strings.Join(lines[:len(lines)-1], "\r\n") + "\r\n"

	report := ValidateStructure(broken)
	assert.False(t, report.Valid)
}

func TestEncodeContent(t *testing.T) {
	b, err := EncodeContent("relatório", EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []byte("relatório"), b)

	b, err = EncodeContent("relatório", EncodingLatin)
	require.NoError(t, err)
	// ó is a single 0xF3 byte in latin-1
	assert.Equal(t, 9, len(b))
	assert.Equal(t, byte(0xF3), b[5])

	_, err = EncodeContent("日報", EncodingLatin)
	assert.Error(t, err, "unrepresentable characters must fail, not transliterate")

	_, err = EncodeContent("x", "UTF-16")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
