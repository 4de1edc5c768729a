package export

import (
	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/valuation"
)

type AFDRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	Encoding    string `json:"encoding"`
}

type AEJRequest struct {
	PeriodStart            string `json:"period_start" binding:"required"`
	PeriodEnd              string `json:"period_end" binding:"required"`
	Environment            string `json:"environment"`
	IncludeOvertimeDetails bool   `json:"include_overtime_details"`
	IncludeMonetaryValues  bool   `json:"include_monetary_values"`
}

// ValidationResult is the body of the precondition check endpoint. It is
// always returned with 200; Valid=false carries the reasons.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// JourneyReport is one employee's consolidated month, with monetary values
// when a salary contract is on file.
type JourneyReport struct {
	EmployeeID string                       `json:"employee_id"`
	Name       string                       `json:"name"`
	PIS        string                       `json:"pis,omitempty"`
	Monthly    journey.MonthlyJourneyResult `json:"monthly"`
	Monetary   *valuation.MonetaryValues    `json:"monetary,omitempty"`
}
