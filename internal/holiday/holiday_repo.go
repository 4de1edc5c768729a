package holiday

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/tenant"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	FindByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Holiday, error)
	MapByPeriod(ctx context.Context, companyID string, start, end time.Time, loc *time.Location) (map[string]bool, error)
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// MapByPeriod returns the period holidays keyed by calendar day in the
// employer timezone, the shape the daily consolidation consumes.
func (r *repository) MapByPeriod(ctx context.Context, companyID string, start, end time.Time, loc *time.Location) (map[string]bool, error) {
	rows, err := r.FindByPeriod(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	out := make(map[string]bool, len(rows))
	for _, h := range rows {
		out[h.Date.In(loc).Format("2006-01-02")] = true
	}
	return out, nil
}
