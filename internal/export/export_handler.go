package export

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/csorodrigo/projeto-rh-sub003/internal/afd"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(err)
	response.Error(c, mapped.Status, mapped.Code, mapped.Message, mapped.Details)
}

// GenerateAFD produces the fixed-width punch file and streams it as a
// download in the requested encoding.
func (h *Handler) GenerateAFD(c *gin.Context) {
	var req AFDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	result, err := h.service.GenerateAFD(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	body, err := afd.EncodeContent(result.Content, result.Encoding)
	if err != nil {
		writeError(c, apperror.Encoding(err))
		return
	}

	contentType := "text/plain; charset=utf-8"
	if result.Encoding == afd.EncodingLatin {
		contentType = "text/plain; charset=iso-8859-1"
	}
	response.Download(c, body, response.FileMeta{
		Filename:       result.Filename,
		ContentType:    contentType,
		TotalEmployees: result.TotalEmployees,
		Period:         req.PeriodStart + "/" + req.PeriodEnd,
	})
}

// GenerateAEJ produces the e-Social journey event XML.
func (h *Handler) GenerateAEJ(c *gin.Context) {
	var req AEJRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	result, err := h.service.GenerateAEJ(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Download(c, []byte(result.XML), response.FileMeta{
		Filename:       result.Filename,
		ContentType:    "application/xml; charset=utf-8",
		TotalEmployees: result.TotalEmployees,
		Period:         result.Period,
		EventID:        result.EventID,
	})
}

// Validate reports whether the company can export, without generating
// anything. Always 200; the body carries the failures.
func (h *Handler) Validate(c *gin.Context) {
	result, err := h.service.Validate(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Query("period_start"),
		c.Query("period_end"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

// MonthlyJourney returns one employee's consolidated month as JSON.
func (h *Handler) MonthlyJourney(c *gin.Context) {
	result, err := h.service.MonthlyJourney(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("employeeId"),
		c.Query("period_start"),
		c.Query("period_end"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}
