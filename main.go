package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"shopgate/backend/internal/config"
	"shopgate/backend/internal/db"
	"shopgate/backend/internal/handler"
	shttp "shopgate/backend/internal/http"
	"shopgate/backend/internal/repository"
	"shopgate/backend/internal/scheduler"
	"shopgate/backend/internal/service"
	"shopgate/backend/pkg/logger"
	"shopgate/backend/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := snowflake.Init(1); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath)
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	incidentRepo := repository.NewIncidentRepository(database)
	clientBlockRepo := repository.NewClientBlockRepository(database)
	deviceBlockRepo := repository.NewDeviceBlockRepository(database)
	orderRepo := repository.NewOrderViewRepository(database)
	tenantConfigRepo := repository.NewTenantConfigRepository(database)

	incidentService := service.NewIncidentService(incidentRepo)

	windowStore := service.NewMemoryWindowStore(service.RateLimitWindow, service.RateLimitMaxAttempts, service.RateLimitCooldown)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		windowStore = service.NewRedisWindowStore(client, service.RateLimitWindow, service.RateLimitMaxAttempts, service.RateLimitCooldown)
		logger.Info("rate-limit windows backed by redis", "addr", cfg.RedisAddr)
	}

	rateLimitService := service.NewRateLimitService(windowStore, clientBlockRepo, incidentService)
	deviceGuardService := service.NewDeviceGuardService(deviceBlockRepo, orderRepo, incidentService, cfg.RequireDeviceID)
	busyModeService := service.NewBusyModeService(tenantConfigRepo, orderRepo, incidentService)
	admissionService := service.NewAdmissionService(rateLimitService, deviceGuardService, busyModeService)
	blockService := service.NewBlockService(clientBlockRepo, deviceBlockRepo, incidentRepo)
	sweepService := service.NewSweepService(incidentRepo, clientBlockRepo, deviceBlockRepo)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.OperatorPasswordHash)

	e := shttp.NewRouter(
		handler.NewAdmissionHandler(admissionService, rateLimitService, deviceGuardService, busyModeService),
		handler.NewBlockHandler(blockService),
		handler.NewIncidentHandler(incidentService),
		handler.NewBusyModeHandler(busyModeService),
		handler.NewAuthHandler(authService),
		authService,
	)

	sched := scheduler.New(sweepService, cfg.SweepInterval)
	sched.Start()
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		errCh <- e.Start(cfg.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
