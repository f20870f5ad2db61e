package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}
	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The template store is
// reported but never gates readiness: the registry falls back to builtin
// templates when the store is down.
func ReadinessHandler(redis *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api": "ok",
		}

		if redis != nil {
			if err := redis.IsHealthy(c.Request().Context()); err != nil {
				logging.GetGlobalLogger().Warn("Template store unavailable", map[string]interface{}{
					"error": err.Error(),
				})
				checks["template_store"] = "degraded"
			} else {
				checks["template_store"] = "ok"
			}
		} else {
			checks["template_store"] = "disabled"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(redis *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":      "operational",
			"renderer": "operational",
		}
		if redis != nil {
			if err := redis.IsHealthy(c.Request().Context()); err != nil {
				checks["template_store"] = "degraded"
			} else {
				checks["template_store"] = "operational"
			}
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
