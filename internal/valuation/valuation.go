package valuation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
)

var (
	ErrInvalidWeeklyHours = errors.New("weekly hours must be positive")
	ErrNegativeSalary     = errors.New("base salary must not be negative")
)

// Contract carries the contractual parameters of one employee for a month.
// WeeklyHours drives the monthly divisor (44h/week -> 220), so contracts
// outside the standard CLT convention are valued without hard-coded factors.
type Contract struct {
	BaseSalary       decimal.Decimal
	WeeklyHours      int
	NightPremiumRate decimal.Decimal // default 0.20
	WorkdaysInMonth  int
	SundaysInMonth   int
}

// MonetaryValues is the currency output of the valuation engine. All values
// are rounded half-up to centavos at this boundary only; intermediate math
// keeps full decimal precision.
type MonetaryValues struct {
	BaseSalary       decimal.Decimal `json:"base_salary"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	Overtime50Value  decimal.Decimal `json:"overtime_50_value"`
	Overtime100Value decimal.Decimal `json:"overtime_100_value"`
	NightShiftValue  decimal.Decimal `json:"night_shift_value"`
	DSRValue         decimal.Decimal `json:"dsr_value"`
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
}

var (
	sixty        = decimal.NewFromInt(60)
	overtime50x  = decimal.RequireFromString("1.5")
	overtime100x = decimal.NewFromInt(2)
	defaultNight = decimal.RequireFromString("0.20")
)

// HourlyRate derives the hourly wage from the monthly salary using the
// weekly-hours divisor: baseSalary / (weeklyHours * 30/7).
func HourlyRate(baseSalary decimal.Decimal, weeklyHours int) decimal.Decimal {
	divisor := decimal.NewFromInt(int64(weeklyHours)).
		Mul(decimal.NewFromInt(30)).
		Div(decimal.NewFromInt(7))
	return baseSalary.Div(divisor)
}

// DSR computes the weekly-rest repercussion of overtime pay, guarded against
// a zero-workday month.
func DSR(overtimeValue decimal.Decimal, workdaysInMonth, sundaysInMonth int) decimal.Decimal {
	if workdaysInMonth == 0 {
		return decimal.Zero
	}
	return overtimeValue.
		Div(decimal.NewFromInt(int64(workdaysInMonth))).
		Mul(decimal.NewFromInt(int64(sundaysInMonth)))
}

// Calculate converts a monthly journey result into currency values. Pure
// function of its inputs; callers across employees may run it in parallel.
func Calculate(c Contract, m journey.MonthlyJourneyResult) (MonetaryValues, error) {
	if c.WeeklyHours <= 0 {
		return MonetaryValues{}, ErrInvalidWeeklyHours
	}
	if c.BaseSalary.IsNegative() {
		return MonetaryValues{}, ErrNegativeSalary
	}

	nightRate := c.NightPremiumRate
	if nightRate.IsZero() {
		nightRate = defaultNight
	}

	rate := HourlyRate(c.BaseSalary, c.WeeklyHours)

	ot50 := rate.Mul(overtime50x).Mul(decimalHours(m.TotalOvertime50Minutes))
	ot100 := rate.Mul(overtime100x).Mul(decimalHours(m.TotalOvertime100Minutes))
	night := rate.Mul(nightRate).Mul(decimalHours(m.TotalNightMinutes))
	dsr := DSR(ot50.Add(ot100), c.WorkdaysInMonth, c.SundaysInMonth)
	absence := rate.Mul(decimalHours(m.TotalMissingMinutes))

	total := c.BaseSalary.
		Add(ot50).
		Add(ot100).
		Add(night).
		Add(dsr).
		Sub(absence)

	return MonetaryValues{
		BaseSalary:       c.BaseSalary.Round(2),
		HourlyRate:       rate.Round(2),
		Overtime50Value:  ot50.Round(2),
		Overtime100Value: ot100.Round(2),
		NightShiftValue:  night.Round(2),
		DSRValue:         dsr.Round(2),
		AbsenceDeduction: absence.Round(2),
		TotalEarnings:    total.Round(2),
	}, nil
}

// decimalHours mirrors timemath.ToDecimalHours (half-up, two places) in
// decimal space so currency math never passes through a float.
func decimalHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2)
}
