package afd

import (
	"errors"
	"time"
)

// Fixed-width AFD layout (Portaria 671/2021, REP-C). Every line is one
// record; NSR is a 9-digit sequence starting at 1 that covers framing
// records too, with no gaps and no reuse inside a file.
const (
	recordTypeHeader     = "1"
	recordTypePunch      = "3"
	recordTypeAdjustment = "4"
	recordTypeInclusion  = "5"
	recordTypeTrailer    = "9"

	nsrWidth      = 9
	dateWidth     = 8  // ddmmyyyy
	dateTimeWidth = 12 // ddmmyyyyhhmm
	pisWidth      = 12
	employerWidth = 14 // CNPJ or CPF, zero-padded
	ceiWidth      = 14
	nameWidth     = 150
	reasonWidth   = 100
	authorWidth   = 50
	countWidth    = 9

	headerLineWidth     = nsrWidth + 1 + 1 + employerWidth + ceiWidth + nameWidth + dateWidth + dateWidth + dateTimeWidth
	punchLineWidth      = nsrWidth + 1 + dateTimeWidth + pisWidth
	adjustmentLineWidth = nsrWidth + 1 + nsrWidth + dateTimeWidth + dateTimeWidth + pisWidth + reasonWidth + authorWidth + dateTimeWidth
	inclusionLineWidth  = nsrWidth + 1 + dateTimeWidth + pisWidth + reasonWidth + authorWidth + dateTimeWidth
	trailerLineWidth    = nsrWidth + 1 + countWidth*3

	dateLayout     = "02012006"
	dateTimeLayout = "020120061504"
)

const (
	EncodingUTF8  = "UTF-8"
	EncodingLatin = "ISO-8859-1"
)

var (
	ErrMissingPIS        = errors.New("afd: punch without employee PIS")
	ErrMissingEmployerID = errors.New("afd: employer CNPJ/CPF is required")
	ErrZeroInstant       = errors.New("afd: record carries a zero instant")
	ErrUnknownEncoding   = errors.New("afd: unsupported encoding")
)

// Employer identifies the company in the file header.
type Employer struct {
	// IDType is "1" for CNPJ, "2" for CPF.
	IDType string
	ID     string
	CEI    string
	Name   string
}

// Punch is one raw clock event already attributed to an employee.
type Punch struct {
	NSR int // assigned during generation; informative on parse
	PIS string
	At  time.Time
}

// Adjustment corrects an existing punch. It references the original NSR and
// is appended as a new dated record; existing records are never renumbered.
type Adjustment struct {
	NSR         int
	OriginalNSR int
	OriginalAt  time.Time
	AdjustedAt  time.Time
	PIS         string
	Reason      string
	AdjustedBy  string
	RecordedAt  time.Time
}

// Inclusion is a manually added punch that was missed at capture time.
type Inclusion struct {
	NSR        int
	At         time.Time
	PIS        string
	Reason     string
	IncludedBy string
	RecordedAt time.Time
}

// Period is the requested date range of the file.
type Period struct {
	Start time.Time
	End   time.Time
}

// Input is everything the generator needs. GeneratedAt is supplied by the
// caller so generation stays a pure function and output is reproducible.
type Input struct {
	Employer    Employer
	Period      Period
	Punches     []Punch
	Adjustments []Adjustment
	Inclusions  []Inclusion
	GeneratedAt time.Time
	Location    *time.Location
}

// Document is the parsed form of a file, sufficient to regenerate it
// byte-for-byte.
type Document struct {
	Employer    Employer
	Period      Period
	GeneratedAt time.Time
	Punches     []Punch
	Adjustments []Adjustment
	Inclusions  []Inclusion
}

// Result is the outcome of a successful generation. TotalEmployees is the
// employee scope of the file, supplied by the orchestration layer; Generate
// itself only sequences records.
type Result struct {
	Content        string
	Filename       string
	TotalRecords   int
	TotalEmployees int
	Encoding       string
}

// ValidationReport is returned by ValidateStructure.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
