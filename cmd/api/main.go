package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"formpdf/internal/codegen"
	"formpdf/internal/config"
	"formpdf/internal/http/middleware"
	"formpdf/internal/http/server"
	"formpdf/internal/logger"
	"formpdf/internal/otel"
	"formpdf/internal/pdf"
	"formpdf/internal/service"
	"formpdf/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Form PDF API
// @version 1.0
// @description Creates PDF documents from form data and returns them by code.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.NewForEnvironment(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Documents live in process memory only; a restart discards them.
	store := storage.NewMemory()
	renderer := pdf.NewRenderer(pdf.WithTitle(cfg.Document.Title))

	opts := server.Options{
		Logger:       zl,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Tracing:      otel.Enabled(),
	}
	svcOpts := []service.Option{service.WithMaxAttempts(cfg.Document.CodeMaxAttempts)}

	if cfg.Document.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		metrics, err := service.NewMetrics(reg, store)
		if err != nil {
			zl.Fatal("failed to register document metrics", zap.Error(err))
		}
		httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			zl.Fatal("failed to register http metrics", zap.Error(err))
		}

		svcOpts = append(svcOpts, service.WithMetrics(metrics))
		opts.Metrics = httpMetrics
		opts.Gatherer = reg
	}

	opts.Documents = service.NewDocumentService(store, renderer, codegen.New(), svcOpts...)
	app := server.New(opts)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		zl.Info("server_starting", zap.String("addr", addr), zap.String("env", cfg.Env))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
	}

	zl.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("tracing shutdown failed", zap.Error(err))
	}
}
