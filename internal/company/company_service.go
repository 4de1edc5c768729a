package company

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = "America/Sao_Paulo"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return CompanyResponse{}, apperror.InvalidField("timezone")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &Company{
		ID:       uuid.New(),
		Name:     req.Name,
		CNPJ:     req.CNPJ,
		CEI:      req.CEI,
		Address:  req.Address,
		Timezone: timezone,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return CompanyResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		CNPJ:     c.CNPJ,
		CEI:      c.CEI,
		Address:  c.Address,
		Timezone: c.Timezone,
	}
}
