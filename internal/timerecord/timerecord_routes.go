package timerecord

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/time-records")
	{
		records.POST("", h.RecordPunch)
		records.GET("/employees/:employeeId", h.GetByEmployee)
	}
}
