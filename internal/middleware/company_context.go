package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/contextutil"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/response"
)

// CompanyContext resolves the tenant from the X-Company-Id header. Every
// route under /v1 is company-scoped, so a missing or malformed header stops
// the request here.
func CompanyContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetHeader("X-Company-Id")
		if companyID == "" {
			response.Error(c, http.StatusBadRequest, "MISSING_COMPANY", "X-Company-Id header is required", nil)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(companyID); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_COMPANY", "X-Company-Id must be a UUID", nil)
			c.Abort()
			return
		}

		c.Set("company_id", companyID)
		ctx := contextutil.WithCompanyID(c.Request.Context(), companyID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
