package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/absence"
	"github.com/csorodrigo/projeto-rh-sub003/internal/aej"
	"github.com/csorodrigo/projeto-rh-sub003/internal/afd"
	"github.com/csorodrigo/projeto-rh-sub003/internal/company"
	"github.com/csorodrigo/projeto-rh-sub003/internal/employee"
	"github.com/csorodrigo/projeto-rh-sub003/internal/employeesalary"
	"github.com/csorodrigo/projeto-rh-sub003/internal/events"
	"github.com/csorodrigo/projeto-rh-sub003/internal/holiday"
	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/messaging/kafka"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
	"github.com/csorodrigo/projeto-rh-sub003/internal/timerecord"
	"github.com/csorodrigo/projeto-rh-sub003/internal/valuation"
	"github.com/csorodrigo/projeto-rh-sub003/internal/workschedule"
)

const (
	maxPeriodMonths     = 12
	journeyWorkersLimit = 8
)

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	GenerateAFD(ctx context.Context, companyID string, req AFDRequest) (afd.Result, error)
	GenerateAEJ(ctx context.Context, companyID string, req AEJRequest) (aej.Result, error)
	Validate(ctx context.Context, companyID string, start, end string) (ValidationResult, error)
	MonthlyJourney(ctx context.Context, companyID, employeeID string, start, end string) (JourneyReport, error)
}

// Deps groups the collaborator repositories the export orchestration reads
// from. Everything here is read-only during generation; the only write is the
// outbox row recording that a file was produced.
type Deps struct {
	Companies    company.Repository
	Employees    employee.Repository
	Salaries     employeesalary.Repository
	Schedules    workschedule.Repository
	Holidays     holiday.Repository
	Absences     absence.Repository
	TimeRecords  timerecord.Repository
	Consolidator timerecord.Service
	Outbox       kafka.OutboxRepository
}

type service struct {
	db    *sql.DB
	deps  Deps
	group singleflight.Group
}

func NewService(db *sql.DB, deps Deps) Service {
	return &service{db: db, deps: deps}
}

func (s *service) GenerateAFD(ctx context.Context, companyID string, req AFDRequest) (afd.Result, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return afd.Result{}, err
	}
	encoding := req.Encoding
	if encoding == "" {
		encoding = afd.EncodingUTF8
	}

	// Concurrent identical requests share one generation.
	key := fmt.Sprintf("afd:%s:%s:%s:%s", companyID, req.PeriodStart, req.PeriodEnd, encoding)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.generateAFD(ctx, companyID, start, end, encoding)
	})
	if err != nil {
		return afd.Result{}, err
	}
	return v.(afd.Result), nil
}

func (s *service) generateAFD(ctx context.Context, companyID string, start, end time.Time, encoding string) (afd.Result, error) {
	comp, emps, err := s.preconditions(ctx, companyID)
	if err != nil {
		return afd.Result{}, err
	}

	loc := comp.Location()
	startLoc := atMidnight(start, loc)
	endLoc := atMidnight(end, loc).AddDate(0, 0, 1)

	pisByEmployee := make(map[uuid.UUID]string, len(emps))
	for _, e := range emps {
		pisByEmployee[e.ID] = e.PIS
	}

	rows, err := s.deps.TimeRecords.FindAllByCompanyAndPeriod(ctx, companyID, startLoc, endLoc)
	if err != nil {
		return afd.Result{}, err
	}

	punches := make([]afd.Punch, 0, len(rows))
	for _, r := range rows {
		pis, ok := pisByEmployee[r.EmployeeID]
		if !ok {
			// punch of an inactive employee; the file still must carry it
			emp, err := s.deps.Employees.FindByIDAndCompany(ctx, companyID, r.EmployeeID.String())
			if err != nil {
				return afd.Result{}, err
			}
			pis = emp.PIS
			pisByEmployee[r.EmployeeID] = pis
		}
		punches = append(punches, afd.Punch{PIS: pis, At: r.RecordedAt.In(loc)})
	}

	result, err := afd.Generate(afd.Input{
		Employer: afd.Employer{
			IDType: "1",
			ID:     comp.CNPJ,
			CEI:    comp.CEI,
			Name:   comp.Name,
		},
		Period:      afd.Period{Start: startLoc, End: endLoc.AddDate(0, 0, -1)},
		Punches:     punches,
		GeneratedAt: time.Now().In(loc),
		Location:    loc,
	}, encoding)
	if err != nil {
		return afd.Result{}, mapGenerationError(err)
	}
	result.TotalEmployees = len(emps)

	if err := s.recordOutbox(ctx, companyID, "afd", result.Filename, events.AFDGeneratedTopic, events.AFDGeneratedEvent{
		EventType:    "afd.generated",
		CompanyID:    companyID,
		PeriodStart:  start.Format("2006-01-02"),
		PeriodEnd:    end.Format("2006-01-02"),
		Filename:     result.Filename,
		TotalRecords: result.TotalRecords,
		OccurredAt:   time.Now().UTC(),
	}); err != nil {
		return afd.Result{}, err
	}

	zap.L().Info("afd generated",
		zap.String("company_id", companyID),
		zap.String("filename", result.Filename),
		zap.Int("total_records", result.TotalRecords),
	)
	return result, nil
}

func (s *service) GenerateAEJ(ctx context.Context, companyID string, req AEJRequest) (aej.Result, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return aej.Result{}, err
	}
	env := req.Environment
	if env == "" {
		env = aej.EnvironmentProduction
	}
	if env != aej.EnvironmentProduction && env != aej.EnvironmentStaging {
		return aej.Result{}, apperror.InvalidField("environment")
	}

	key := fmt.Sprintf("aej:%s:%s:%s:%s:%t:%t",
		companyID, req.PeriodStart, req.PeriodEnd, env,
		req.IncludeOvertimeDetails, req.IncludeMonetaryValues)
	v, err, _ := s.group.Do(key, func() (any, error) {
		cfg := aej.Config{
			Environment:            env,
			IncludeOvertimeDetails: req.IncludeOvertimeDetails,
			IncludeMonetaryValues:  req.IncludeMonetaryValues,
		}
		return s.generateAEJ(ctx, companyID, start, end, cfg)
	})
	if err != nil {
		return aej.Result{}, err
	}
	return v.(aej.Result), nil
}

func (s *service) generateAEJ(ctx context.Context, companyID string, start, end time.Time, cfg aej.Config) (aej.Result, error) {
	comp, emps, err := s.preconditions(ctx, companyID)
	if err != nil {
		return aej.Result{}, err
	}

	loc := comp.Location()
	startLoc := atMidnight(start, loc)
	endLoc := atMidnight(end, loc).AddDate(0, 0, 1)

	jc, err := s.journeyConfig(ctx, companyID, loc)
	if err != nil {
		return aej.Result{}, err
	}
	holidays, err := s.deps.Holidays.MapByPeriod(ctx, companyID, startLoc, endLoc, loc)
	if err != nil {
		return aej.Result{}, err
	}

	// One slot per employee keeps output order deterministic regardless of
	// which goroutine finishes first.
	journeys := make([]aej.EmployeeJourney, len(emps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(journeyWorkersLimit)
	for i, emp := range emps {
		i, emp := i, emp
		g.Go(func() error {
			j, err := s.buildJourney(gctx, companyID, emp, startLoc, endLoc, jc, holidays, cfg.IncludeMonetaryValues)
			if err != nil {
				return err
			}
			journeys[i] = j
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return aej.Result{}, err
	}

	result, err := aej.Generate(
		aej.CompanyInfo{CNPJ: comp.CNPJ, Name: comp.Name, Address: comp.Address},
		journeys,
		aej.Period{Start: startLoc, End: endLoc.AddDate(0, 0, -1)},
		time.Now().In(loc),
		cfg,
	)
	if err != nil {
		return aej.Result{}, mapGenerationError(err)
	}

	if err := s.recordOutbox(ctx, companyID, "aej", result.Filename, events.AEJGeneratedTopic, events.AEJGeneratedEvent{
		EventType:      "aej.generated",
		CompanyID:      companyID,
		Period:         result.Period,
		EventID:        result.EventID,
		Filename:       result.Filename,
		TotalEmployees: result.TotalEmployees,
		OccurredAt:     time.Now().UTC(),
	}); err != nil {
		return aej.Result{}, err
	}

	zap.L().Info("aej generated",
		zap.String("company_id", companyID),
		zap.String("filename", result.Filename),
		zap.Int("total_employees", result.TotalEmployees),
	)
	return result, nil
}

func (s *service) Validate(ctx context.Context, companyID string, start, end string) (ValidationResult, error) {
	report := ValidationResult{Errors: []string{}}

	if _, _, err := parsePeriod(start, end); err != nil {
		var ae *apperror.AppError
		if errors.As(err, &ae) {
			report.Errors = append(report.Errors, ae.Message)
		} else {
			return ValidationResult{}, err
		}
	}

	comp, err := s.deps.Companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			report.Errors = append(report.Errors, "Empresa nao encontrada")
			return report, nil
		}
		return ValidationResult{}, err
	}
	if comp.CNPJ == "" {
		report.Errors = append(report.Errors, "Empresa sem CNPJ cadastrado")
	}

	emps, err := s.deps.Employees.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return ValidationResult{}, err
	}
	if len(emps) == 0 {
		report.Errors = append(report.Errors, "Nenhum funcionario ativo na empresa")
	}
	for _, e := range emps {
		if e.PIS == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Funcionario sem PIS: %s", e.FullName))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report, nil
}

func (s *service) MonthlyJourney(ctx context.Context, companyID, employeeID string, start, end string) (JourneyReport, error) {
	startDate, endDate, err := parsePeriod(start, end)
	if err != nil {
		return JourneyReport{}, err
	}

	comp, err := s.deps.Companies.FindByID(ctx, companyID)
	if err != nil {
		return JourneyReport{}, mapNotFound(err)
	}
	emp, err := s.deps.Employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		return JourneyReport{}, mapNotFound(err)
	}

	loc := comp.Location()
	startLoc := atMidnight(startDate, loc)
	endLoc := atMidnight(endDate, loc).AddDate(0, 0, 1)

	jc, err := s.journeyConfig(ctx, companyID, loc)
	if err != nil {
		return JourneyReport{}, err
	}
	holidays, err := s.deps.Holidays.MapByPeriod(ctx, companyID, startLoc, endLoc, loc)
	if err != nil {
		return JourneyReport{}, err
	}

	j, err := s.buildJourney(ctx, companyID, *emp, startLoc, endLoc, jc, holidays, true)
	if err != nil {
		return JourneyReport{}, err
	}

	return JourneyReport{
		EmployeeID: emp.ID.String(),
		Name:       emp.FullName,
		PIS:        emp.PIS,
		Monthly:    j.Monthly,
		Monetary:   j.Monetary,
	}, nil
}

// buildJourney runs the full per-employee pipeline: consolidate punches,
// calculate each day, aggregate the month, then value it when a salary
// contract exists.
func (s *service) buildJourney(ctx context.Context, companyID string, emp employee.Employee, start, end time.Time, jc journey.Config, holidays map[string]bool, withMonetary bool) (aej.EmployeeJourney, error) {
	days, err := s.deps.Consolidator.ConsolidateDaily(ctx, companyID, emp.ID.String(), start, end, holidays, jc.Location)
	if err != nil {
		return aej.EmployeeJourney{}, err
	}

	results := make([]journey.DailyJourneyResult, len(days))
	for i, d := range days {
		results[i] = jc.CalculateDaily(d)
	}

	absenceDays, err := s.deps.Absences.CountDaysInPeriod(ctx, companyID, emp.ID.String(), start, end)
	if err != nil {
		return aej.EmployeeJourney{}, err
	}

	monthly, err := journey.ConsolidateMonth(results, absenceDays)
	if err != nil {
		return aej.EmployeeJourney{}, apperror.DataIntegrity(err, fmt.Sprintf("Dados de jornada inconsistentes: %s", emp.FullName))
	}

	j := aej.EmployeeJourney{
		PIS:     emp.PIS,
		CPF:     emp.CPF,
		Name:    emp.FullName,
		Monthly: monthly,
	}

	if withMonetary {
		contract, err := s.deps.Salaries.FindEffective(ctx, companyID, emp.ID.String(), start)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return j, nil
			}
			return aej.EmployeeJourney{}, err
		}
		workdays, sundays := countCalendarDays(start, end, holidays)
		values, err := valuation.Calculate(valuation.Contract{
			BaseSalary:       contract.BaseSalary,
			WeeklyHours:      contract.WeeklyHours,
			NightPremiumRate: contract.NightPremiumRate,
			WorkdaysInMonth:  workdays,
			SundaysInMonth:   sundays,
		}, monthly)
		if err != nil {
			return aej.EmployeeJourney{}, apperror.DataIntegrity(err, fmt.Sprintf("Contrato invalido: %s", emp.FullName))
		}
		j.Monetary = &values
	}
	return j, nil
}

// preconditions gates every generation: the company must exist, have active
// employees, and every active employee must carry a PIS.
func (s *service) preconditions(ctx context.Context, companyID string) (*company.Company, []employee.Employee, error) {
	comp, err := s.deps.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	if comp.CNPJ == "" {
		return nil, nil, apperror.Precondition("Empresa sem CNPJ cadastrado")
	}

	emps, err := s.deps.Employees.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	if len(emps) == 0 {
		return nil, nil, apperror.Precondition("Nenhum funcionario ativo na empresa")
	}

	var missing []string
	for _, e := range emps {
		if e.PIS == "" {
			missing = append(missing, e.FullName)
		}
	}
	if len(missing) > 0 {
		return nil, nil, apperror.Precondition("Funcionarios sem PIS nao podem ser exportados", missing...)
	}
	return comp, emps, nil
}

func (s *service) journeyConfig(ctx context.Context, companyID string, loc *time.Location) (journey.Config, error) {
	jc := journey.DefaultConfig(loc)
	sched, err := s.deps.Schedules.FindDefaultByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jc, nil
		}
		return journey.Config{}, err
	}
	jc.ExpectedWorkdayMinutes = sched.ExpectedWorkdayMinutes
	jc.BreakMinimumMinutes = sched.BreakMinimumMinutes
	jc.ToleranceMinutes = sched.ToleranceMinutes
	if sched.NightReductionFactor > 0 {
		jc.NightReductionFactor = sched.NightReductionFactor
	}
	return jc, nil
}

// recordOutbox persists the generated-file event for the producer worker.
func (s *service) recordOutbox(ctx context.Context, companyID, aggregateType, aggregateID, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     topic,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.deps.Outbox.WithTx(tx).Create(ctx, event); err != nil {
		return err
	}
	return tx.Commit()
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("period_start")
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("period_end")
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			"period_end must not be before period_start",
			http.StatusBadRequest,
		)
	}
	if endDate.After(startDate.AddDate(0, maxPeriodMonths, 0)) {
		return time.Time{}, time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("period must not exceed %d months", maxPeriodMonths),
			http.StatusBadRequest,
		)
	}
	return startDate, endDate, nil
}

// atMidnight re-anchors a parsed UTC date at local midnight. Day boundaries
// are always evaluated in the employer timezone.
func atMidnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// countCalendarDays splits [start, end) into workdays and Sundays for the
// DSR divisor. Holidays on weekdays do not count as workdays.
func countCalendarDays(start, end time.Time, holidays map[string]bool) (workdays, sundays int) {
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			sundays++
			continue
		}
		if holidays[day.Format("2006-01-02")] {
			continue
		}
		workdays++
	}
	return workdays, sundays
}

func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, afd.ErrUnknownEncoding):
		return apperror.Encoding(err)
	case errors.Is(err, afd.ErrMissingPIS),
		errors.Is(err, afd.ErrMissingEmployerID),
		errors.Is(err, aej.ErrMissingPIS),
		errors.Is(err, aej.ErrMissingCompany),
		errors.Is(err, aej.ErrNoEmployees):
		return apperror.Precondition(err.Error())
	case errors.Is(err, afd.ErrZeroInstant):
		return apperror.DataIntegrity(err, "Registro de ponto com instante invalido")
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return err
}
