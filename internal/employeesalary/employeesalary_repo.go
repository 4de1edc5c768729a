package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/tenant"
)

//go:generate mockgen -source=employeesalary_repo.go -destination=mock/employeesalary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *EmployeeSalary) error
	FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error)
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

func (r *repository) Create(ctx context.Context, s *EmployeeSalary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error) {
	var s EmployeeSalary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND effective_date <= ?", employeeID, asOf).
		Order("effective_date DESC").
		First(&s).Error
	return &s, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error) {
	var rows []EmployeeSalary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&rows).Error
	return rows, err
}
