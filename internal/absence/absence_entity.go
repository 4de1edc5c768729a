package absence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeVacation    = "vacation"
	TypeSickLeave   = "sick_leave"
	TypeUnjustified = "unjustified"
)

// Absence is a justified or unjustified leave interval. Only the day count
// reaches the monthly consolidation; the type is kept for HR reporting.
type Absence struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(30);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Absence) TableName() string {
	return "absences"
}

func ValidType(t string) bool {
	switch t {
	case TypeVacation, TypeSickLeave, TypeUnjustified:
		return true
	}
	return false
}
