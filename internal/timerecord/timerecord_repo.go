package timerecord

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/tenant"
)

//go:generate mockgen -source=timerecord_repo.go -destination=mock/timerecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *TimeRecord) error
	FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecord, error)
	FindAllByCompanyAndPeriod(ctx context.Context, companyID string, start, end time.Time) ([]TimeRecord, error)
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

func (r *repository) Create(ctx context.Context, rec *TimeRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("recorded_at >= ? AND recorded_at < ?", start, end).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompanyAndPeriod(ctx context.Context, companyID string, start, end time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("recorded_at >= ? AND recorded_at < ?", start, end).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}
