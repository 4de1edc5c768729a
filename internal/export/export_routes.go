package export

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	exports := r.Group("/exports")
	{
		exports.POST("/afd", h.GenerateAFD)
		exports.POST("/aej", h.GenerateAEJ)
		exports.GET("/validate", h.Validate)
		exports.GET("/journeys/employees/:employeeId", h.MonthlyJourney)
	}
}
