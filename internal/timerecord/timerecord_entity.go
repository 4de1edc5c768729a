package timerecord

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeClockIn    = "clock_in"
	TypeClockOut   = "clock_out"
	TypeBreakStart = "break_start"
	TypeBreakEnd   = "break_end"
)

// TimeRecord is one raw punch. Records are immutable once persisted:
// corrections go through AFD adjustment/inclusion records, never through
// updates here.
type TimeRecord struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Type       string         `gorm:"column:type;type:varchar(20);not null"`
	RecordedAt time.Time      `gorm:"column:recorded_at;type:timestamptz;not null;index"`
	Source     string         `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

func validPunchType(t string) bool {
	switch t {
	case TypeClockIn, TypeClockOut, TypeBreakStart, TypeBreakEnd:
		return true
	default:
		return false
	}
}
