package absence

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/tenant"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Absence) error
	FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Absence, error)
	CountDaysInPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) (int, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Absence) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Absence, error) {
	var rows []Absence
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND start_date < ? AND end_date >= ?", employeeID, end, start).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

// CountDaysInPeriod sums the absence days that fall inside [start, end),
// clipping intervals that straddle the period boundaries.
func (r *repository) CountDaysInPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) (int, error) {
	rows, err := r.FindByEmployeeAndPeriod(ctx, companyID, employeeID, start, end)
	if err != nil {
		return 0, err
	}
	return countDays(rows, start, end), nil
}

func countDays(rows []Absence, start, end time.Time) int {
	total := 0
	for _, a := range rows {
		from := a.StartDate
		if from.Before(start) {
			from = start
		}
		to := a.EndDate.AddDate(0, 0, 1)
		if to.After(end) {
			to = end
		}
		days := int(to.Sub(from).Hours() / 24)
		if days > 0 {
			total += days
		}
	}
	return total
}
