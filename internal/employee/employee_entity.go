package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee carries the legal identifiers the regulatory files depend on.
// PIS is mandatory for AFD/AEJ generation; the export validation endpoint
// reports employees missing it before any file is produced.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName   string    `gorm:"type:varchar(150);not null"`
	PIS        string    `gorm:"column:pis;type:varchar(14);index"`
	CPF        string    `gorm:"column:cpf;type:varchar(14);index"`
	IsActive   bool      `gorm:"not null;default:true"`
	AdmittedAt *time.Time `gorm:"type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
