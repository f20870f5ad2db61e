package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/logging"
	"resumeforge/internal/template"
	"resumeforge/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging before anything that logs
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting ResumeForge", map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	})

	// Template store is optional: the registry masks an absent or failing
	// store with the builtin template set.
	var redisClient *utils.RedisClient
	if cfg.Redis.URL != "" {
		redisClient = utils.NewRedisClient(cfg)
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := redisClient.Ping(pingCtx); err != nil {
			logger.Warn("Template store unreachable at startup, builtin templates remain available", map[string]interface{}{
				"error": err.Error(),
			})
		}
		cancel()
		defer redisClient.Close()
	} else {
		logger.Info("No template store configured, using builtin templates only")
	}

	var registry *template.Registry
	if redisClient != nil {
		registry = template.NewRegistry(redisClient, cfg)
	} else {
		registry = template.NewRegistry(nil, cfg)
	}

	pipeline := exporter.NewPipeline(registry)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	routes.SetupRoutes(e, cfg, pipeline, redisClient)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
