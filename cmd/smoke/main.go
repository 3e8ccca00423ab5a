package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"tutormock/internal/logger"
	"tutormock/internal/smoke"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3006", "base URL of the mock server")
	prefix := flag.String("prefix", "/api", "API prefix to check (/api or /api/v1)")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	zl, err := logger.New("info", "console")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	failures := 0
	for _, r := range smoke.NewClient(*baseURL, *timeout).Run(context.Background(), *prefix) {
		if r.OK() {
			zl.Info("route_ok", zap.String("method", r.Method), zap.String("path", r.Path), zap.Int("status", r.Status))
			continue
		}
		failures++
		zl.Error("route_failed", zap.String("method", r.Method), zap.String("path", r.Path), zap.Int("status", r.Status), zap.Error(r.Err))
	}

	if failures > 0 {
		zl.Sync()
		os.Exit(1)
	}
}
