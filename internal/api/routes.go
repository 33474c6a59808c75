package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/mars-explorer/infrastructure/gin"
	"github.com/jonesrussell/mars-explorer/internal/config"
	"github.com/jonesrussell/mars-explorer/internal/render"
)

// MetricsHandler serves /metrics and instruments routes. telemetry.Metrics
// implements it.
type MetricsHandler interface {
	Handler() http.Handler
	HTTPMiddleware() gin.HandlerFunc
}

// SetupRoutes configures all routes.
// Health routes are registered by the infrastructure gin builder.
func SetupRoutes(router *gin.Engine, deps Deps, svc config.ServiceConfig) {
	router.SetHTMLTemplate(render.Templates())

	if svc.StaticDir != "" {
		router.Static("/static", svc.StaticDir)
	}

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
		router.Use(deps.Metrics.HTTPMiddleware())
	}

	v1 := router.Group("/api/v1", infragin.RateLimitMiddleware(svc.RateLimitRPS, svc.RateLimitBurst))
	v1.GET("/apod", deps.APOD.Get)

	router.GET("/", deps.Pages.Show)
	router.GET("/pages/:page", deps.Pages.Show)
}
