package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"tutormock/internal/config"
	"tutormock/internal/http/server"
	"tutormock/internal/logger"
	"tutormock/internal/otel"
	"tutormock/internal/process"
	"tutormock/internal/service"
)

// @title Tutoring Marketplace Mock API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, zl, cfg.Version)
	if err != nil {
		zl.Fatal("tracing_init_failed", zap.Error(err))
	}

	proc := process.New(cfg.Version, cfg.Environment)
	svc := service.NewFixtureService(proc)

	app, err := server.New(server.Options{
		Config:   cfg,
		Logger:   zl,
		Service:  svc,
		Registry: prometheus.NewRegistry(),
	})
	if err != nil {
		zl.Fatal("failed_to_build_app", zap.Error(err))
	}

	addr := ":" + cfg.Port
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listen(addr)
	}()

	zl.Info("server_started",
		zap.String("addr", addr),
		zap.String("environment", cfg.Environment),
		zap.String("version", cfg.Version),
		zap.Strings("cors_allow_origins", cfg.CORS.AllowOrigins),
	)

	select {
	case err := <-serveErr:
		if err != nil {
			zl.Fatal("failed_to_start_server", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	// No drain: in-flight requests are cut once the timeout (default 0) elapses.
	zl.Info("shutting_down", zap.Float64("uptime_seconds", proc.Uptime()))
	timeout := time.Duration(cfg.ShutdownTimeoutMs) * time.Millisecond
	if err := app.ShutdownWithTimeout(timeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		zl.Error("shutdown_failed", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		zl.Warn("tracing_shutdown_failed", zap.Error(err))
	}
}
