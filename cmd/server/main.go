package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finsight/internal/config"
	"finsight/internal/database"
	"finsight/internal/handlers"
	custommiddleware "finsight/internal/middleware"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	ledgerRepo := repositories.NewLedgerRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	forecastRepo := repositories.NewForecastRepository(db)

	metrics := services.NewPrometheusMetrics()
	forecastService := services.NewForecastService(ledgerRepo, goalRepo, forecastRepo, metrics, cfg.Forecast)
	seeder := services.NewLedgerSeeder(ledgerRepo)

	if cfg.Forecast.SeedDemoData && cfg.IsDevelopment() {
		demoUser := uuid.New()
		if entries, err := seeder.SeedHistory(demoUser, cfg.Forecast.HistoryMonths); err != nil {
			slog.Warn("Failed to seed demo ledger history", "error", err)
		} else {
			slog.Info("Seeded demo ledger history", "user_id", demoUser, "entries", len(entries))
		}
	}

	healthHandler := handlers.NewHealthCheckHandler(db)
	ledgerHandler := handlers.NewLedgerHandler(ledgerRepo, forecastService)
	goalHandler := handlers.NewGoalHandler(goalRepo, forecastService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	devHandler := handlers.NewDevHandler(seeder, forecastService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, custommiddleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	users := api.Group("/users/:user_id")
	users.POST("/ledger", ledgerHandler.CreateEntry)
	users.GET("/ledger", ledgerHandler.ListEntries)
	users.POST("/goals", goalHandler.CreateGoal)
	users.GET("/goals/active", goalHandler.GetActiveGoal)
	users.PUT("/goals/active/progress", goalHandler.UpdateGoalProgress)
	users.GET("/forecast", forecastHandler.GetForecast)
	users.POST("/forecast/refresh", forecastHandler.RefreshForecast)
	users.GET("/forecast/goal", forecastHandler.GetGoalForecast)
	users.GET("/forecast/categories", forecastHandler.GetCategoryForecast)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev")
		dev.POST("/users/:user_id/seed", devHandler.SeedLedgerHistory)
		slog.Info("Development endpoints enabled")
	}

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
