package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeSalary is an effective-dated contract row. The valuation engine
// always uses the latest row effective on or before the export period start.
type EmployeeSalary struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BaseSalary       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	WeeklyHours      int             `gorm:"not null;default:44"`
	NightPremiumRate decimal.Decimal `gorm:"type:numeric(5,4);not null;default:0.20"`
	EffectiveDate    time.Time       `gorm:"type:date;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}
