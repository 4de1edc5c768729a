package holiday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holiday marks a company-observed holiday. Work on these days is paid
// entirely as 100% overtime by the journey engine.
type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Date      time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Holiday) TableName() string {
	return "holidays"
}
