package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sim-registry/config"
	httpHandler "sim-registry/internal/adapter/http/handler"
	pgStorage "sim-registry/internal/adapter/storage/postgres"
	redisStorage "sim-registry/internal/adapter/storage/redis"
	"sim-registry/internal/core/ports"
	"sim-registry/internal/service"
	"sim-registry/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting SIM Registry")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	bindingRepo := pgStorage.NewBindingRepo(pool)
	reportRepo := pgStorage.NewFraudReportRepo(pool)

	// Initialize Redis stores
	attemptStore := redisStorage.NewAttemptStore(rdb)
	reportCache := redisStorage.NewReportCache(rdb)

	// Initialize business services
	registrationSvc := service.NewRegistrationService(bindingRepo, log)
	verificationSvc := service.NewVerificationService(bindingRepo, log)
	swapSvc := service.NewSwapService(bindingRepo, verificationSvc, log)
	fraudSvc := service.NewFraudService(bindingRepo, reportRepo, reportCache, service.FraudServiceConfig{
		MaxConcurrentLookups: cfg.Fraud.MaxConcurrentLookups,
		LookupTimeout:        cfg.Fraud.LookupTimeout,
		ReportCacheTTL:       cfg.Fraud.ReportCacheTTL,
	}, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RegistrationSvc: registrationSvc,
		VerificationSvc: verificationSvc,
		SwapSvc:         swapSvc,
		FraudSvc:        fraudSvc,
		AttemptStore:    attemptStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Policy: httpHandler.RegistrationPolicy{
			MaxPerNationalID: cfg.Registration.MaxPerNationalID,
			MinAgeYears:      cfg.Registration.MinAgeYears,
		},
		Logger: log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
