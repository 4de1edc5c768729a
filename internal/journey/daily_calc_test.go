package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return DefaultConfig(loc)
}

func at(loc *time.Location, day, hour, minute int) *time.Time {
	v := time.Date(2025, 3, day, hour, minute, 0, 0, loc)
	return &v
}

func workday(loc *time.Location, inH, inM, outH, outM int) DailyTimeRecord {
	return DailyTimeRecord{
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		ClockIn:    at(loc, 10, inH, inM),
		ClockOut:   at(loc, 10, outH, outM),
		BreakStart: at(loc, 10, 12, 0),
		BreakEnd:   at(loc, 10, 13, 0),
		IsWorkday:  true,
	}
}

func TestCalculateDaily_StandardWorkday(t *testing.T) {
	cfg := testConfig(t)
	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 17, 0))

	assert.Equal(t, 540, res.WorkedMinutes)
	assert.Equal(t, 60, res.BreakMinutes)
	assert.Equal(t, 480, res.NetWorkedMinutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, 0, res.MissingMinutes)
	assert.Equal(t, 0, res.TimeBankMinutes)
	assert.Empty(t, res.Warnings)
}

func TestCalculateDaily_SmallOverageCountsByDefault(t *testing.T) {
	cfg := testConfig(t)
	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 17, 8))

	// without a schedule tolerance every minute counts
	assert.Equal(t, 488, res.NetWorkedMinutes)
	assert.Equal(t, 8, res.Overtime50Minutes)
	assert.Equal(t, 0, res.MissingMinutes)
	assert.Equal(t, 8, res.TimeBankMinutes)
}

func TestCalculateDaily_SmallShortfallCountsByDefault(t *testing.T) {
	cfg := testConfig(t)
	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 16, 55))

	assert.Equal(t, 475, res.NetWorkedMinutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, 5, res.MissingMinutes)
	assert.Equal(t, -5, res.TimeBankMinutes)
}

func TestCalculateDaily_ScheduleTolerance(t *testing.T) {
	cfg := testConfig(t)
	cfg.ToleranceMinutes = 10

	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 17, 8))
	assert.Equal(t, 488, res.NetWorkedMinutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, 0, res.MissingMinutes)
	assert.Equal(t, 0, res.TimeBankMinutes)

	res = cfg.CalculateDaily(workday(cfg.Location, 8, 0, 17, 15))
	assert.Equal(t, 495, res.NetWorkedMinutes)
	assert.Equal(t, 15, res.Overtime50Minutes)
	assert.Equal(t, 15, res.TimeBankMinutes)
}

func TestCalculateDaily_Overtime(t *testing.T) {
	cfg := testConfig(t)
	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 19, 0))

	assert.Equal(t, 600, res.NetWorkedMinutes)
	assert.Equal(t, 120, res.Overtime50Minutes)
	assert.Equal(t, 0, res.Overtime100Minutes)
	assert.Equal(t, 0, res.MissingMinutes)
	assert.Equal(t, 120, res.TimeBankMinutes)
}

func TestCalculateDaily_MissingMinutes(t *testing.T) {
	cfg := testConfig(t)
	res := cfg.CalculateDaily(workday(cfg.Location, 8, 0, 15, 0))

	assert.Equal(t, 360, res.NetWorkedMinutes)
	assert.Equal(t, 120, res.MissingMinutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, -120, res.TimeBankMinutes)
}

func TestCalculateDaily_SundayIsFullOvertime100(t *testing.T) {
	cfg := testConfig(t)
	rec := workday(cfg.Location, 8, 0, 17, 0)
	rec.IsWorkday = false
	rec.IsSunday = true

	res := cfg.CalculateDaily(rec)
	assert.Equal(t, 480, res.Overtime100Minutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, 0, res.MissingMinutes)
	// rest day expects zero, so the whole net goes to the time bank
	assert.Equal(t, 480, res.TimeBankMinutes)
}

func TestCalculateDaily_MissingPunch(t *testing.T) {
	cfg := testConfig(t)
	rec := DailyTimeRecord{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, cfg.Location),
		ClockIn:   at(cfg.Location, 10, 8, 0),
		IsWorkday: true,
	}

	res := cfg.CalculateDaily(rec)
	assert.Equal(t, 0, res.WorkedMinutes)
	assert.Equal(t, 480, res.MissingMinutes)
	assert.Equal(t, 0, res.Overtime50Minutes)
	assert.Equal(t, 0, res.Overtime100Minutes)
	assert.Contains(t, res.Warnings, "Sem registro de ponto")
}

func TestCalculateDaily_MissingPunchOnRestDay(t *testing.T) {
	cfg := testConfig(t)
	rec := DailyTimeRecord{
		Date:     time.Date(2025, 3, 9, 0, 0, 0, 0, cfg.Location),
		IsSunday: true,
	}

	res := cfg.CalculateDaily(rec)
	assert.Equal(t, 0, res.MissingMinutes)
	assert.Equal(t, 0, res.TimeBankMinutes)
	assert.Contains(t, res.Warnings, "Sem registro de ponto")
}

func TestCalculateDaily_ShortBreakWarning(t *testing.T) {
	cfg := testConfig(t)
	rec := workday(cfg.Location, 8, 0, 17, 0)
	rec.BreakEnd = at(cfg.Location, 10, 12, 30)

	res := cfg.CalculateDaily(rec)
	assert.Equal(t, 30, res.BreakMinutes)
	assert.Contains(t, res.Warnings, "Intervalo inferior ao minimo legal (60 min)")
}

func TestCalculateDaily_NightShift(t *testing.T) {
	cfg := testConfig(t)
	rec := DailyTimeRecord{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, cfg.Location),
		ClockIn:   at(cfg.Location, 10, 22, 0),
		ClockOut:  at(cfg.Location, 11, 5, 0),
		IsWorkday: true,
	}

	res := cfg.CalculateDaily(rec)
	assert.Equal(t, 420, res.WorkedMinutes)
	// 420 actual night minutes / 0.875 = 480 reduced
	assert.Equal(t, 480, res.NightMinutes)
}

func TestNightMinutes(t *testing.T) {
	cfg := testConfig(t)
	loc := cfg.Location

	// fully inside the window, crossing midnight
	assert.Equal(t, 420, cfg.NightMinutes(*at(loc, 10, 22, 0), *at(loc, 11, 5, 0)))

	// partially overlapping the head of the window
	assert.Equal(t, 120, cfg.NightMinutes(*at(loc, 10, 18, 0), *at(loc, 11, 0, 0)))

	// daytime shift has no night minutes
	assert.Equal(t, 0, cfg.NightMinutes(*at(loc, 10, 8, 0), *at(loc, 10, 17, 0)))

	// overlapping only the tail before 05:00
	assert.Equal(t, 60, cfg.NightMinutes(*at(loc, 10, 4, 0), *at(loc, 10, 12, 0)))
}

func TestIsNightTime(t *testing.T) {
	cfg := testConfig(t)
	loc := cfg.Location

	assert.True(t, cfg.IsNightTime(*at(loc, 10, 22, 0)))
	assert.True(t, cfg.IsNightTime(*at(loc, 10, 23, 30)))
	assert.True(t, cfg.IsNightTime(*at(loc, 10, 4, 59)))
	assert.False(t, cfg.IsNightTime(*at(loc, 10, 5, 0)))
	assert.False(t, cfg.IsNightTime(*at(loc, 10, 12, 0)))
	assert.False(t, cfg.IsNightTime(*at(loc, 10, 21, 59)))
}

func TestApplyNightReduction(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, 60, cfg.ApplyNightReduction(52.5))
	assert.Equal(t, 120, cfg.ApplyNightReduction(105))
	assert.Equal(t, 0, cfg.ApplyNightReduction(0))
	// monotonic: more actual minutes never reduce the result
	assert.GreaterOrEqual(t, cfg.ApplyNightReduction(106), cfg.ApplyNightReduction(105))
}
