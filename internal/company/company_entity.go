package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the employer record. Timezone is an IANA name and drives all
// journey day-boundary and night-window math for the company's employees.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	CNPJ      string    `gorm:"column:cnpj;type:varchar(18);uniqueIndex"`
	CEI       string    `gorm:"column:cei;type:varchar(14)"`
	Address   string    `gorm:"type:varchar(255)"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'America/Sao_Paulo'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

// Location resolves the company timezone, falling back to America/Sao_Paulo
// when the stored name is empty or invalid.
func (c Company) Location() *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.UTC
	}
	return loc
}
