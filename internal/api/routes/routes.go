package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/pkg/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, pipeline *exporter.Pipeline, redis *utils.RedisClient) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimit(cfg))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(redis))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(redis))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/preview", handlers.PreviewResumeHandler(pipeline))
			resume.POST("/preview/markup", handlers.PreviewMarkupHandler(pipeline))
			resume.POST("/export", handlers.ExportResumeHandler(pipeline))
			resume.POST("/markup", handlers.MarkupResumeHandler(pipeline))
		}

		v1.GET("/templates", handlers.ListTemplatesHandler(pipeline))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "ResumeForge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
