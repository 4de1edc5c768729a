package company

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("/:id", h.GetByID)
		companies.POST("", h.Create)
	}
}
