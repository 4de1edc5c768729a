package timemath

import (
	"fmt"
	"math"
	"time"
)

// MinutesBetween returns the whole minutes elapsed between two instants.
// The difference is taken on the absolute timeline, so intervals crossing
// midnight (or a DST transition) are handled without wall-clock subtraction.
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// ToDecimalHours converts minutes to decimal hours rounded half-up to two
// places, e.g. 100 -> 1.67.
func ToDecimalHours(minutes int) float64 {
	return math.Round(float64(minutes)/60.0*100) / 100
}

// FormatAsClock renders minutes as "HH:MM", with a single leading "-" for
// negative values. Components are truncated, never rounded.
func FormatAsClock(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

type ToleranceResult struct {
	Adjusted         int
	ExceedsTolerance bool
}

// ApplyTolerance snaps an actual minute value to the expected one when the
// deviation is within the tolerance, symmetric for early and late marks.
func ApplyTolerance(actual, expected, toleranceMinutes int) ToleranceResult {
	diff := actual - expected
	if diff < 0 {
		diff = -diff
	}
	if diff <= toleranceMinutes {
		return ToleranceResult{Adjusted: expected}
	}
	return ToleranceResult{Adjusted: actual, ExceedsTolerance: true}
}
