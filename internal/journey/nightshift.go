package journey

import (
	"math"
	"time"

	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/timemath"
)

// IsNightTime reports whether the instant falls inside the legal night
// window, evaluated in the employer timezone. The window is half-open and
// wraps midnight: [22:00, 05:00) under the default config.
func (c Config) IsNightTime(t time.Time) bool {
	h := t.In(c.Location).Hour()
	if c.NightStartHour > c.NightEndHour {
		return h >= c.NightStartHour || h < c.NightEndHour
	}
	return h >= c.NightStartHour && h < c.NightEndHour
}

// NightMinutes sums the minutes of [start, end) that fall inside the night
// window. A shift that starts before and ends after midnight is split into
// per-day sub-ranges clipped to the window.
func (c Config) NightMinutes(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	start = start.In(c.Location)
	end = end.In(c.Location)

	total := 0
	// Walk each night window that could overlap the interval. Starting one
	// day before covers shifts that begin inside the tail (00:00-05:00) of
	// the previous day's window.
	for day := start.AddDate(0, 0, -1); !day.After(end); day = day.AddDate(0, 0, 1) {
		winStart := time.Date(day.Year(), day.Month(), day.Day(), c.NightStartHour, 0, 0, 0, c.Location)
		winEnd := winStart.Add(time.Duration(24-c.NightStartHour+c.NightEndHour) * time.Hour)
		if c.NightStartHour <= c.NightEndHour {
			winEnd = time.Date(day.Year(), day.Month(), day.Day(), c.NightEndHour, 0, 0, 0, c.Location)
		}

		from := start
		if winStart.After(from) {
			from = winStart
		}
		to := end
		if winEnd.Before(to) {
			to = winEnd
		}
		if to.After(from) {
			total += timemath.MinutesBetween(from, to)
		}
	}
	return total
}

// ApplyNightReduction converts actual night minutes into reduced (paid)
// minutes: 52.5 actual minutes count as 60. The scaling is linear, with no
// banding, so the result is monotonic and proportional.
func (c Config) ApplyNightReduction(actualNightMinutes float64) int {
	if actualNightMinutes <= 0 {
		return 0
	}
	factor := c.NightReductionFactor
	if factor <= 0 {
		factor = 0.875
	}
	return int(math.Round(actualNightMinutes / factor))
}
