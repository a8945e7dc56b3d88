package report

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/payroll",
			middleware.RateLimitByIP(1, 3),
			handler.Export,
		)
	}
}
