package workschedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/tenant"
)

//go:generate mockgen -source=workschedule_repo.go -destination=mock/workschedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *WorkSchedule) error
	FindAllByCompany(ctx context.Context, companyID string) ([]WorkSchedule, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*WorkSchedule, error)
	FindDefaultByCompany(ctx context.Context, companyID string) (*WorkSchedule, error)
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

func (r *repository) Create(ctx context.Context, w *WorkSchedule) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]WorkSchedule, error) {
	var rows []WorkSchedule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*WorkSchedule, error) {
	var w WorkSchedule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&w, "id = ?", id).Error
	return &w, err
}

// FindDefaultByCompany returns the oldest schedule of the company, which the
// export falls back to for employees without an explicit assignment.
func (r *repository) FindDefaultByCompany(ctx context.Context, companyID string) (*WorkSchedule, error) {
	var w WorkSchedule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		First(&w).Error
	return &w, err
}
