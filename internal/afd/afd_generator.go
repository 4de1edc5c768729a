package afd

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// writerState holds the NSR sequence for one generation. It is created per
// call and never shared, so concurrent generations cannot leak sequence
// numbers into each other.
type writerState struct {
	nsr int
}

func (w *writerState) next() int {
	w.nsr++
	return w.nsr
}

// Generate serializes punches, adjustments and inclusions into the
// fixed-width AFD layout. Records are emitted in strict NSR order: header,
// chronological punches, adjustments, inclusions, trailer.
func Generate(in Input, encoding string) (Result, error) {
	if encoding == "" {
		encoding = EncodingUTF8
	}
	if encoding != EncodingUTF8 && encoding != EncodingLatin {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	if strings.TrimSpace(in.Employer.ID) == "" {
		return Result{}, ErrMissingEmployerID
	}
	if err := checkInstants(in); err != nil {
		return Result{}, err
	}
	for _, p := range in.Punches {
		if strings.TrimSpace(p.PIS) == "" {
			return Result{}, fmt.Errorf("%w (at %s)", ErrMissingPIS, p.At.Format(time.RFC3339))
		}
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	punches := make([]Punch, len(in.Punches))
	copy(punches, in.Punches)
	sort.SliceStable(punches, func(i, j int) bool {
		if punches[i].At.Equal(punches[j].At) {
			return punches[i].PIS < punches[j].PIS
		}
		return punches[i].At.Before(punches[j].At)
	})

	w := &writerState{}
	var b strings.Builder

	idType := in.Employer.IDType
	if idType == "" {
		idType = "1"
	}
	writeLine(&b,
		nsr(w.next()),
		recordTypeHeader,
		idType,
		padNum(digitsOnly(in.Employer.ID), employerWidth),
		padNum(digitsOnly(in.Employer.CEI), ceiWidth),
		padText(in.Employer.Name, nameWidth),
		in.Period.Start.In(loc).Format(dateLayout),
		in.Period.End.In(loc).Format(dateLayout),
		in.GeneratedAt.In(loc).Format(dateTimeLayout),
	)

	for _, p := range punches {
		writeLine(&b,
			nsr(w.next()),
			recordTypePunch,
			p.At.In(loc).Format(dateTimeLayout),
			padNum(digitsOnly(p.PIS), pisWidth),
		)
	}

	for _, a := range in.Adjustments {
		writeLine(&b,
			nsr(w.next()),
			recordTypeAdjustment,
			nsr(a.OriginalNSR),
			a.OriginalAt.In(loc).Format(dateTimeLayout),
			a.AdjustedAt.In(loc).Format(dateTimeLayout),
			padNum(digitsOnly(a.PIS), pisWidth),
			padText(a.Reason, reasonWidth),
			padText(a.AdjustedBy, authorWidth),
			a.RecordedAt.In(loc).Format(dateTimeLayout),
		)
	}

	for _, i := range in.Inclusions {
		writeLine(&b,
			nsr(w.next()),
			recordTypeInclusion,
			i.At.In(loc).Format(dateTimeLayout),
			padNum(digitsOnly(i.PIS), pisWidth),
			padText(i.Reason, reasonWidth),
			padText(i.IncludedBy, authorWidth),
			i.RecordedAt.In(loc).Format(dateTimeLayout),
		)
	}

	writeLine(&b,
		nsr(w.next()),
		recordTypeTrailer,
		padCount(len(punches)),
		padCount(len(in.Adjustments)),
		padCount(len(in.Inclusions)),
	)

	return Result{
		Content:      b.String(),
		Filename:     Filename(in.Period),
		TotalRecords: w.nsr,
		Encoding:     encoding,
	}, nil
}

// Filename follows the download convention AFD_<period>.txt.
func Filename(p Period) string {
	return fmt.Sprintf("AFD_%s_%s.txt", p.Start.Format("20060102"), p.End.Format("20060102"))
}

func checkInstants(in Input) error {
	for _, p := range in.Punches {
		if p.At.IsZero() {
			return fmt.Errorf("%w: punch for PIS %s", ErrZeroInstant, p.PIS)
		}
	}
	for _, a := range in.Adjustments {
		if a.OriginalAt.IsZero() || a.AdjustedAt.IsZero() || a.RecordedAt.IsZero() {
			return fmt.Errorf("%w: adjustment for PIS %s", ErrZeroInstant, a.PIS)
		}
	}
	for _, i := range in.Inclusions {
		if i.At.IsZero() || i.RecordedAt.IsZero() {
			return fmt.Errorf("%w: inclusion for PIS %s", ErrZeroInstant, i.PIS)
		}
	}
	if in.Period.Start.IsZero() || in.Period.End.IsZero() || in.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: header", ErrZeroInstant)
	}
	return nil
}

func writeLine(b *strings.Builder, fields ...string) {
	for _, f := range fields {
		b.WriteString(f)
	}
	b.WriteString("\r\n")
}

func nsr(v int) string {
	return fmt.Sprintf("%0*d", nsrWidth, v)
}

func padCount(v int) string {
	return fmt.Sprintf("%0*d", countWidth, v)
}

// padNum left-pads a numeric field with zeros, truncating from the left if
// oversized so the column width always holds.
func padNum(s string, width int) string {
	if len(s) > width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// padText right-pads a text field with spaces, truncating if oversized.
func padText(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
