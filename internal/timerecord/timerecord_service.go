package timerecord

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
)

//go:generate mockgen -source=timerecord_service.go -destination=mock/timerecord_service_mock.go -package=mock
type Service interface {
	RecordPunch(ctx context.Context, companyID string, req PunchRequest) (TimeRecordResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecordResponse, error)
	ConsolidateDaily(ctx context.Context, companyID, employeeID string, start, end time.Time, holidays map[string]bool, loc *time.Location) ([]journey.DailyTimeRecord, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) RecordPunch(ctx context.Context, companyID string, req PunchRequest) (TimeRecordResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeRecordResponse{}, apperror.InvalidField("company_id")
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TimeRecordResponse{}, apperror.InvalidField("employee_id")
	}
	if !validPunchType(req.Type) {
		return TimeRecordResponse{}, apperror.InvalidField("type")
	}
	recordedAt, err := time.Parse(time.RFC3339, req.RecordedAt)
	if err != nil {
		return TimeRecordResponse{}, apperror.InvalidField("recorded_at")
	}

	source := req.Source
	if source == "" {
		source = "MANUAL"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &TimeRecord{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Type:       req.Type,
		RecordedAt: recordedAt,
		Source:     source,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return TimeRecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimeRecordResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecordResponse, error) {
	rows, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	res := make([]TimeRecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// ConsolidateDaily groups an employee's punches into one DailyTimeRecord per
// calendar day of the period, evaluated in the employer timezone. Days with
// no punches still appear, so the journey engine can flag them.
func (s *service) ConsolidateDaily(ctx context.Context, companyID, employeeID string, start, end time.Time, holidays map[string]bool, loc *time.Location) ([]journey.DailyTimeRecord, error) {
	if loc == nil {
		loc = time.UTC
	}
	rows, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]TimeRecord)
	for _, r := range rows {
		key := r.RecordedAt.In(loc).Format("2006-01-02")
		byDay[key] = append(byDay[key], r)
	}

	var out []journey.DailyTimeRecord
	for day := start.In(loc); day.Before(end.In(loc)); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		rec := consolidateDay(day, byDay[key], holidays[key])
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func consolidateDay(day time.Time, punches []TimeRecord, isHoliday bool) journey.DailyTimeRecord {
	rec := journey.DailyTimeRecord{
		Date:      time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		IsSunday:  day.Weekday() == time.Sunday,
		IsHoliday: isHoliday,
	}
	// a Sunday or holiday is never a workday
	rec.IsWorkday = !rec.IsSunday && !rec.IsHoliday

	for _, p := range punches {
		at := p.RecordedAt
		switch p.Type {
		case TypeClockIn:
			// first clock-in of the day wins
			if rec.ClockIn == nil || at.Before(*rec.ClockIn) {
				t := at
				rec.ClockIn = &t
			}
		case TypeClockOut:
			// last clock-out wins
			if rec.ClockOut == nil || at.After(*rec.ClockOut) {
				t := at
				rec.ClockOut = &t
			}
		case TypeBreakStart:
			if rec.BreakStart == nil || at.Before(*rec.BreakStart) {
				t := at
				rec.BreakStart = &t
			}
		case TypeBreakEnd:
			if rec.BreakEnd == nil || at.After(*rec.BreakEnd) {
				t := at
				rec.BreakEnd = &t
			}
		}
	}
	return rec
}

func mapToResponse(r TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		ID:         r.ID.String(),
		CompanyID:  r.CompanyID.String(),
		EmployeeID: r.EmployeeID.String(),
		Type:       r.Type,
		RecordedAt: r.RecordedAt.Format(time.RFC3339),
		Source:     r.Source,
	}
}
