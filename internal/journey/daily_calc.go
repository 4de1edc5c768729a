package journey

import "github.com/csorodrigo/projeto-rh-sub003/internal/shared/timemath"

// CalculateDaily consolidates one day of punches into worked, overtime,
// missing and night minutes. It is a pure function: no I/O, no shared state,
// so batches across employees can run in parallel without synchronization.
func (c Config) CalculateDaily(r DailyTimeRecord) DailyJourneyResult {
	res := DailyJourneyResult{Date: r.Date}
	expected := c.ExpectedMinutes(r)

	if r.ClockIn == nil || r.ClockOut == nil {
		res.MissingMinutes = expected
		res.TimeBankMinutes = -expected
		res.Warnings = append(res.Warnings, warningNoPunch)
		return res
	}

	res.WorkedMinutes = timemath.MinutesBetween(*r.ClockIn, *r.ClockOut)

	if r.BreakStart != nil && r.BreakEnd != nil {
		res.BreakMinutes = timemath.MinutesBetween(*r.BreakStart, *r.BreakEnd)
	}
	if res.BreakMinutes > 0 && res.BreakMinutes < c.BreakMinimumMinutes {
		res.Warnings = append(res.Warnings, warningShortBreak)
	}

	res.NetWorkedMinutes = res.WorkedMinutes - res.BreakMinutes

	// Art. 58 §1 CLT: when the schedule grants a daily tolerance,
	// variations inside it are neither overtime nor missing time. Rest-day
	// work is exempt; it counts from the first minute.
	effective := res.NetWorkedMinutes
	if r.IsWorkday {
		effective = timemath.ApplyTolerance(effective, expected, c.ToleranceMinutes).Adjusted
	}

	switch {
	case r.IsSunday || r.IsHoliday:
		res.Overtime100Minutes = res.NetWorkedMinutes
	case effective > expected:
		res.Overtime50Minutes = effective - expected
	case effective < expected:
		res.MissingMinutes = expected - effective
	}

	night := c.NightMinutes(*r.ClockIn, *r.ClockOut)
	if r.BreakStart != nil && r.BreakEnd != nil {
		night -= c.NightMinutes(*r.BreakStart, *r.BreakEnd)
	}
	if night < 0 {
		night = 0
	}
	res.NightMinutes = c.ApplyNightReduction(float64(night))

	res.TimeBankMinutes = effective - expected
	return res
}
