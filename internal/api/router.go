package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pulse-insights/docs" // swagger spec registration

	"pulse-insights/internal/api/handler"
	"pulse-insights/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/health", h.Health)

	r.POST("/api/v1/pulse", h.SubmitPulse)
	r.GET("/api/v1/pulse/report", h.GetReport)
	r.GET("/api/v1/attrition", h.GetAttrition)
	r.GET("/api/v1/reports", h.ListReports)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
