package timerecord

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) RecordPunch(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.RecordPunch(c.Request.Context(), companyID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.Param("employeeId")

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "start must be YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "end must be YYYY-MM-DD", nil)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), companyID, employeeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
