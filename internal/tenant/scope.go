package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. Every multi-tenant repository
// applies it so cross-company rows can never leak into a regulatory file.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// Active keeps only active rows (employees, companies).
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}
