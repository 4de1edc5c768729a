package aej

import (
	"errors"
	"time"

	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/valuation"
)

var (
	ErrMissingPIS     = errors.New("aej: employee without PIS")
	ErrMissingCompany = errors.New("aej: company CNPJ is required")
	ErrNoEmployees    = errors.New("aej: no employees in scope")
)

const (
	EnvironmentProduction = "producao"
	EnvironmentStaging    = "homologacao"
)

// Config controls optional sections of the event. Environment only switches
// the metadata flag; the payload data is identical in both.
type Config struct {
	Environment            string
	IncludeOvertimeDetails bool
	IncludeMonetaryValues  bool
}

// CompanyInfo identifies the employer in the event.
type CompanyInfo struct {
	CNPJ    string
	Name    string
	Address string
}

// EmployeeJourney is one employee's consolidated month plus identifiers.
type EmployeeJourney struct {
	PIS      string
	CPF      string
	Name     string
	Monthly  journey.MonthlyJourneyResult
	Monetary *valuation.MonetaryValues
}

// Period is the competence range of the event.
type Period struct {
	Start time.Time
	End   time.Time
}

// Result is the outcome of a successful generation.
type Result struct {
	XML            string
	Filename       string
	TotalEmployees int
	EventID        string
	Period         string
}

// ValidationReport is returned by ValidateXML.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
