package export_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/csorodrigo/projeto-rh-sub003/internal/aej"
	"github.com/csorodrigo/projeto-rh-sub003/internal/afd"
	"github.com/csorodrigo/projeto-rh-sub003/internal/export"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
)

type fakeExportService struct {
	generateAFDFn    func(ctx context.Context, companyID string, req export.AFDRequest) (afd.Result, error)
	generateAEJFn    func(ctx context.Context, companyID string, req export.AEJRequest) (aej.Result, error)
	validateFn       func(ctx context.Context, companyID, start, end string) (export.ValidationResult, error)
	monthlyJourneyFn func(ctx context.Context, companyID, employeeID, start, end string) (export.JourneyReport, error)
}

func (f *fakeExportService) GenerateAFD(ctx context.Context, companyID string, req export.AFDRequest) (afd.Result, error) {
	return f.generateAFDFn(ctx, companyID, req)
}

func (f *fakeExportService) GenerateAEJ(ctx context.Context, companyID string, req export.AEJRequest) (aej.Result, error) {
	return f.generateAEJFn(ctx, companyID, req)
}

func (f *fakeExportService) Validate(ctx context.Context, companyID, start, end string) (export.ValidationResult, error) {
	return f.validateFn(ctx, companyID, start, end)
}

func (f *fakeExportService) MonthlyJourney(ctx context.Context, companyID, employeeID, start, end string) (export.JourneyReport, error) {
	return f.monthlyJourneyFn(ctx, companyID, employeeID, start, end)
}

func TestExportHandler_GenerateAFD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()

	svc := &fakeExportService{
		generateAFDFn: func(ctx context.Context, cid string, req export.AFDRequest) (afd.Result, error) {
			assert.Equal(t, companyID, cid)
			return afd.Result{
				Content:        "conteudo\r\n",
				Filename:       "AFD_20250401_20250430.txt",
				TotalRecords:   2,
				TotalEmployees: 5,
				Encoding:       afd.EncodingUTF8,
			}, nil
		},
	}

	h := export.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period_start":"2025-04-01","period_end":"2025-04-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/exports/afd", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)

	h.GenerateAFD(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="AFD_20250401_20250430.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "5", w.Header().Get("X-Total-Employees"))
	assert.Equal(t, "2025-04-01/2025-04-30", w.Header().Get("X-Period"))
	assert.Equal(t, "conteudo\r\n", w.Body.String())
}

func TestExportHandler_GenerateAEJ(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeExportService{
		generateAEJFn: func(ctx context.Context, cid string, req export.AEJRequest) (aej.Result, error) {
			return aej.Result{
				XML:            "<eSocial/>",
				Filename:       "AEJ_202504.xml",
				TotalEmployees: 3,
				EventID:        "ID112345678000195",
				Period:         "2025-04",
			}, nil
		},
	}

	h := export.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period_start":"2025-04-01","period_end":"2025-04-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/exports/aej", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.NewString())

	h.GenerateAEJ(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Total-Employees"))
	assert.Equal(t, "2025-04", w.Header().Get("X-Period"))
	assert.Equal(t, "ID112345678000195", w.Header().Get("X-Event-Id"))
	assert.Equal(t, "<eSocial/>", w.Body.String())
}

func TestExportHandler_PreconditionFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeExportService{
		generateAFDFn: func(ctx context.Context, cid string, req export.AFDRequest) (afd.Result, error) {
			return afd.Result{}, apperror.Precondition("Funcionarios sem PIS nao podem ser exportados", "Maria Souza")
		},
	}

	h := export.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period_start":"2025-04-01","period_end":"2025-04-30"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/exports/afd", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.NewString())

	h.GenerateAFD(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code    string   `json:"code"`
			Message string   `json:"message"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, []string{"Maria Souza"}, env.Error.Details)
}

func TestExportHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeExportService{
		validateFn: func(ctx context.Context, cid, start, end string) (export.ValidationResult, error) {
			return export.ValidationResult{Valid: false, Errors: []string{"Nenhum funcionario ativo na empresa"}}, nil
		},
	}

	h := export.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/exports/validate?period_start=2025-04-01&period_end=2025-04-30", nil)
	c.Set("company_id", uuid.NewString())

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nenhum funcionario ativo na empresa")
}
