package journey

import (
	"time"
)

// Config carries the legal parameters of the journey calculation. Defaults
// follow the 44h/week CLT convention but nothing here is hard-coded in the
// engine, so contracts with different schedules can be valued correctly.
type Config struct {
	// Location is the employer timezone. Night-window checks are always
	// evaluated in this zone, never in UTC.
	Location *time.Location

	// NightStartHour/NightEndHour bound the legal night window
	// [NightStartHour:00, NightEndHour:00), wrapping midnight.
	NightStartHour int
	NightEndHour   int

	// NightReductionFactor converts actual night minutes into reduced
	// (paid) minutes: reduced = round(actual / factor). The legal factor is
	// 0.875 (52.5 real minutes = 1 reduced hour).
	NightReductionFactor float64

	// ExpectedWorkdayMinutes is the contracted baseline for a workday.
	ExpectedWorkdayMinutes int

	// BreakMinimumMinutes is the legal minimum intra-journey break.
	BreakMinimumMinutes int

	// ToleranceMinutes is the daily punch tolerance (Art. 58 §1 CLT).
	// Zero counts every minute; work schedules opt in to snapping.
	ToleranceMinutes int
}

const (
	warningNoPunch    = "Sem registro de ponto"
	warningShortBreak = "Intervalo inferior ao minimo legal (60 min)"
)

// DefaultConfig returns the standard CLT parameters in the employer zone.
func DefaultConfig(loc *time.Location) Config {
	if loc == nil {
		loc = time.UTC
	}
	return Config{
		Location:               loc,
		NightStartHour:         22,
		NightEndHour:           5,
		NightReductionFactor:   0.875,
		ExpectedWorkdayMinutes: 480,
		BreakMinimumMinutes:    60,
		ToleranceMinutes:       0,
	}
}

// DailyTimeRecord is one employee-day of consolidated punches, built by the
// time record collaborator. Punch instants are nullable: a missing pair means
// the day has no usable journey.
type DailyTimeRecord struct {
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	IsWorkday  bool
	IsHoliday  bool
	IsSunday   bool
}

// DailyJourneyResult is the per-day output of the calculation engine.
// Invariants: NetWorkedMinutes = WorkedMinutes - BreakMinutes and
// TimeBankMinutes = tolerance-adjusted net - expected; Overtime* and
// MissingMinutes never carry opposite signs on the same day.
type DailyJourneyResult struct {
	Date               time.Time `json:"date"`
	WorkedMinutes      int       `json:"worked_minutes"`
	BreakMinutes       int       `json:"break_minutes"`
	NetWorkedMinutes   int       `json:"net_worked_minutes"`
	Overtime50Minutes  int       `json:"overtime_50_minutes"`
	Overtime100Minutes int       `json:"overtime_100_minutes"`
	NightMinutes       int       `json:"night_minutes"`
	MissingMinutes     int       `json:"missing_minutes"`
	TimeBankMinutes    int       `json:"time_bank_minutes"`
	Warnings           []string  `json:"warnings,omitempty"`
}

// MonthlyJourneyResult aggregates one employee-month. It is derived data,
// recomputed on demand and never mutated in place.
type MonthlyJourneyResult struct {
	TotalWorkedDays         int                  `json:"total_worked_days"`
	TotalWorkedMinutes      int                  `json:"total_worked_minutes"`
	TotalWorkedHours        float64              `json:"total_worked_hours"`
	TotalOvertime50Minutes  int                  `json:"total_overtime_50_minutes"`
	TotalOvertime100Minutes int                  `json:"total_overtime_100_minutes"`
	TotalNightMinutes       int                  `json:"total_night_minutes"`
	TotalMissingMinutes     int                  `json:"total_missing_minutes"`
	TimeBankBalance         int                  `json:"time_bank_balance"`
	AbsenceDays             int                  `json:"absence_days"`
	DailyDetails            []DailyJourneyResult `json:"daily_details"`
}

// ExpectedMinutes returns the contracted minutes for a day: the workday
// baseline for workdays, zero for rest days, holidays and Sundays.
func (c Config) ExpectedMinutes(r DailyTimeRecord) int {
	if r.IsWorkday {
		return c.ExpectedWorkdayMinutes
	}
	return 0
}
