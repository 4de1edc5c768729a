package afd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse reconstructs the record set from file content. Together with
// Generate it is round-trip stable: regenerating a parsed document yields
// byte-identical output.
func Parse(content string, loc *time.Location) (Document, error) {
	if loc == nil {
		loc = time.UTC
	}
	lines := splitLines(content)
	if len(lines) < 2 {
		return Document{}, fmt.Errorf("afd: file needs at least header and trailer, got %d lines", len(lines))
	}

	var doc Document
	for i, line := range lines {
		fields := []rune(line)
		if len(fields) <= nsrWidth {
			return Document{}, fmt.Errorf("afd: line %d too short", i+1)
		}
		recNSR, err := strconv.Atoi(string(fields[:nsrWidth]))
		if err != nil {
			return Document{}, fmt.Errorf("afd: line %d: bad NSR: %w", i+1, err)
		}
		recType := string(fields[nsrWidth : nsrWidth+1])
		rest := fields[nsrWidth+1:]

		switch recType {
		case recordTypeHeader:
			if err := parseHeader(&doc, rest, loc); err != nil {
				return Document{}, fmt.Errorf("afd: line %d: %w", i+1, err)
			}
		case recordTypePunch:
			at, err := parseDateTime(string(rest[:dateTimeWidth]), loc)
			if err != nil {
				return Document{}, fmt.Errorf("afd: line %d: %w", i+1, err)
			}
			doc.Punches = append(doc.Punches, Punch{
				NSR: recNSR,
				At:  at,
				PIS: string(rest[dateTimeWidth : dateTimeWidth+pisWidth]),
			})
		case recordTypeAdjustment:
			a, err := parseAdjustment(recNSR, rest, loc)
			if err != nil {
				return Document{}, fmt.Errorf("afd: line %d: %w", i+1, err)
			}
			doc.Adjustments = append(doc.Adjustments, a)
		case recordTypeInclusion:
			inc, err := parseInclusion(recNSR, rest, loc)
			if err != nil {
				return Document{}, fmt.Errorf("afd: line %d: %w", i+1, err)
			}
			doc.Inclusions = append(doc.Inclusions, inc)
		case recordTypeTrailer:
			// counts are re-derived on regeneration
		default:
			return Document{}, fmt.Errorf("afd: line %d: unknown record type %q", i+1, recType)
		}
	}
	return doc, nil
}

// Regenerate rebuilds the exact file content from a parsed document.
func Regenerate(doc Document, encoding string, loc *time.Location) (Result, error) {
	return Generate(Input{
		Employer:    doc.Employer,
		Period:      doc.Period,
		Punches:     doc.Punches,
		Adjustments: doc.Adjustments,
		Inclusions:  doc.Inclusions,
		GeneratedAt: doc.GeneratedAt,
		Location:    loc,
	}, encoding)
}

func parseHeader(doc *Document, rest []rune, loc *time.Location) error {
	if len(rest) != headerLineWidth-nsrWidth-1 {
		return fmt.Errorf("header width %d, want %d", len(rest)+nsrWidth+1, headerLineWidth)
	}
	off := 0
	doc.Employer.IDType = string(rest[off : off+1])
	off++
	doc.Employer.ID = string(rest[off : off+employerWidth])
	off += employerWidth
	doc.Employer.CEI = string(rest[off : off+ceiWidth])
	off += ceiWidth
	doc.Employer.Name = strings.TrimRight(string(rest[off:off+nameWidth]), " ")
	off += nameWidth

	start, err := time.ParseInLocation(dateLayout, string(rest[off:off+dateWidth]), loc)
	if err != nil {
		return err
	}
	off += dateWidth
	end, err := time.ParseInLocation(dateLayout, string(rest[off:off+dateWidth]), loc)
	if err != nil {
		return err
	}
	off += dateWidth
	gen, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return err
	}
	doc.Period = Period{Start: start, End: end}
	doc.GeneratedAt = gen
	return nil
}

func parseAdjustment(recNSR int, rest []rune, loc *time.Location) (Adjustment, error) {
	if len(rest) != adjustmentLineWidth-nsrWidth-1 {
		return Adjustment{}, fmt.Errorf("adjustment width %d, want %d", len(rest)+nsrWidth+1, adjustmentLineWidth)
	}
	off := 0
	origNSR, err := strconv.Atoi(string(rest[off : off+nsrWidth]))
	if err != nil {
		return Adjustment{}, err
	}
	off += nsrWidth
	origAt, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return Adjustment{}, err
	}
	off += dateTimeWidth
	adjAt, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return Adjustment{}, err
	}
	off += dateTimeWidth
	pis := string(rest[off : off+pisWidth])
	off += pisWidth
	reason := strings.TrimRight(string(rest[off:off+reasonWidth]), " ")
	off += reasonWidth
	author := strings.TrimRight(string(rest[off:off+authorWidth]), " ")
	off += authorWidth
	recAt, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return Adjustment{}, err
	}
	return Adjustment{
		NSR:         recNSR,
		OriginalNSR: origNSR,
		OriginalAt:  origAt,
		AdjustedAt:  adjAt,
		PIS:         pis,
		Reason:      reason,
		AdjustedBy:  author,
		RecordedAt:  recAt,
	}, nil
}

func parseInclusion(recNSR int, rest []rune, loc *time.Location) (Inclusion, error) {
	if len(rest) != inclusionLineWidth-nsrWidth-1 {
		return Inclusion{}, fmt.Errorf("inclusion width %d, want %d", len(rest)+nsrWidth+1, inclusionLineWidth)
	}
	off := 0
	at, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return Inclusion{}, err
	}
	off += dateTimeWidth
	pis := string(rest[off : off+pisWidth])
	off += pisWidth
	reason := strings.TrimRight(string(rest[off:off+reasonWidth]), " ")
	off += reasonWidth
	author := strings.TrimRight(string(rest[off:off+authorWidth]), " ")
	off += authorWidth
	recAt, err := parseDateTime(string(rest[off:off+dateTimeWidth]), loc)
	if err != nil {
		return Inclusion{}, err
	}
	return Inclusion{
		NSR:        recNSR,
		At:         at,
		PIS:        pis,
		Reason:     reason,
		IncludedBy: author,
		RecordedAt: recAt,
	}, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, s, loc)
}

func splitLines(content string) []string {
	trimmed := strings.TrimSuffix(content, "\r\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\r\n")
}
