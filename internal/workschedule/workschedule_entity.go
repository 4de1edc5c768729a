package workschedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkSchedule holds the journey parameters of a group of employees. The
// defaults match the standard 44h CLT contract: 8h workdays, a one hour
// minimum meal break and the 10 minute daily punch tolerance.
type WorkSchedule struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                   string    `gorm:"type:varchar(100);not null"`
	ExpectedWorkdayMinutes int       `gorm:"not null;default:480"`
	BreakMinimumMinutes    int       `gorm:"not null;default:60"`
	ToleranceMinutes       int       `gorm:"not null;default:10"`
	NightReductionFactor   float64   `gorm:"type:numeric(6,4);not null;default:0.875"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}
