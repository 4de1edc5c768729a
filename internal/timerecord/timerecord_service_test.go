package timerecord

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	withTxFn           func(tx *sql.Tx) Repository
	createFn           func(ctx context.Context, r *TimeRecord) error
	findByEmployeeFn   func(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecord, error)
	findAllByCompanyFn func(ctx context.Context, companyID string, start, end time.Time) ([]TimeRecord, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                    { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, r *TimeRecord) error { return f.createFn(ctx, r) }
func (f *fakeRepo) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecord, error) {
	return f.findByEmployeeFn(ctx, companyID, employeeID, start, end)
}
func (f *fakeRepo) FindAllByCompanyAndPeriod(ctx context.Context, companyID string, start, end time.Time) ([]TimeRecord, error) {
	return f.findAllByCompanyFn(ctx, companyID, start, end)
}

func TestService_RecordPunch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved TimeRecord
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, r *TimeRecord) error { saved = *r; return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.RecordPunch(context.Background(), uuid.New().String(), PunchRequest{
		EmployeeID: uuid.New().String(),
		Type:       TypeClockIn,
		RecordedAt: "2025-03-10T08:00:00-03:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, TypeClockIn, saved.Type)
	assert.Equal(t, "MANUAL", saved.Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordPunch_InvalidType(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.RecordPunch(context.Background(), uuid.New().String(), PunchRequest{
		EmployeeID: uuid.New().String(),
		Type:       "lunch",
		RecordedAt: "2025-03-10T08:00:00-03:00",
	})
	assert.Error(t, err)
}

func TestService_ConsolidateDaily(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	companyID := uuid.New()
	employeeID := uuid.New()
	punch := func(typ string, d, h, m int) TimeRecord {
		return TimeRecord{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Type:       typ,
			RecordedAt: time.Date(2025, 3, d, h, m, 0, 0, loc),
		}
	}

	repo := &fakeRepo{
		findByEmployeeFn: func(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecord, error) {
			return []TimeRecord{
				punch(TypeClockIn, 10, 8, 0),
				punch(TypeBreakStart, 10, 12, 0),
				punch(TypeBreakEnd, 10, 13, 0),
				punch(TypeClockOut, 10, 17, 0),
				// day 11 has only a clock-in
				punch(TypeClockIn, 11, 8, 0),
			}, nil
		},
	}

	svc := NewService(db, repo)
	start := time.Date(2025, 3, 9, 0, 0, 0, 0, loc) // a Sunday
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)

	days, err := svc.ConsolidateDaily(context.Background(), companyID.String(), employeeID.String(), start, end, map[string]bool{"2025-03-11": true}, loc)
	require.NoError(t, err)
	require.Len(t, days, 3)

	// 2025-03-09 is a Sunday with no punches
	assert.True(t, days[0].IsSunday)
	assert.False(t, days[0].IsWorkday)
	assert.Nil(t, days[0].ClockIn)

	// 2025-03-10 fully punched workday
	assert.True(t, days[1].IsWorkday)
	require.NotNil(t, days[1].ClockIn)
	require.NotNil(t, days[1].ClockOut)
	assert.Equal(t, 8, days[1].ClockIn.In(loc).Hour())
	assert.Equal(t, 17, days[1].ClockOut.In(loc).Hour())

	// 2025-03-11 is a holiday, so never a workday
	assert.True(t, days[2].IsHoliday)
	assert.False(t, days[2].IsWorkday)
	assert.NotNil(t, days[2].ClockIn)
	assert.Nil(t, days[2].ClockOut)
}
