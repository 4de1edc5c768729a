package journey

import (
	"fmt"

	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/timemath"
)

// IntegrityError marks a malformed daily result reaching the consolidator.
// Negative minute buckets mean the producer is broken; the month is rejected
// instead of silently clamped.
type IntegrityError struct {
	DayIndex int
	Field    string
	Value    int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("daily result %d: %s is negative (%d)", e.DayIndex, e.Field, e.Value)
}

// ConsolidateMonth aggregates ordered daily results for one employee-month.
// absenceDays comes from the absence collaborator and is carried through.
func ConsolidateMonth(days []DailyJourneyResult, absenceDays int) (MonthlyJourneyResult, error) {
	var m MonthlyJourneyResult

	for i, d := range days {
		if err := checkDay(i, d); err != nil {
			return MonthlyJourneyResult{}, err
		}
		if d.NetWorkedMinutes > 0 {
			m.TotalWorkedDays++
		}
		m.TotalWorkedMinutes += d.NetWorkedMinutes
		m.TotalOvertime50Minutes += d.Overtime50Minutes
		m.TotalOvertime100Minutes += d.Overtime100Minutes
		m.TotalNightMinutes += d.NightMinutes
		m.TotalMissingMinutes += d.MissingMinutes
		m.TimeBankBalance += d.TimeBankMinutes
	}

	m.TotalWorkedHours = timemath.ToDecimalHours(m.TotalWorkedMinutes)
	m.AbsenceDays = absenceDays
	m.DailyDetails = days
	return m, nil
}

func checkDay(i int, d DailyJourneyResult) error {
	fields := map[string]int{
		"worked_minutes":       d.WorkedMinutes,
		"break_minutes":        d.BreakMinutes,
		"overtime_50_minutes":  d.Overtime50Minutes,
		"overtime_100_minutes": d.Overtime100Minutes,
		"night_minutes":        d.NightMinutes,
		"missing_minutes":      d.MissingMinutes,
	}
	for name, v := range fields {
		if v < 0 {
			return &IntegrityError{DayIndex: i, Field: name, Value: v}
		}
	}
	return nil
}
