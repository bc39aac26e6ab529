package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/usecase"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/port"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/infrastructure/adapter"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/infrastructure/config"
	infrakafka "github.com/Ismat-Samadov/BNPL-scoring/internal/infrastructure/kafka"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/middleware"
	grpcPresentation "github.com/Ismat-Samadov/BNPL-scoring/internal/presentation/grpc"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/presentation/rest"
	pkgkafka "github.com/Ismat-Samadov/BNPL-scoring/pkg/kafka"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting scoring-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		return
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck

	// Event publisher: Kafka when brokers are configured, no-op otherwise.
	var publisher port.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.ServiceName,
		})
		publisher = infrakafka.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = adapter.NewNoopEventPublisher(logger)
		logger.Info("no kafka brokers configured, events will be dropped")
	}
	defer func() { _ = publisher.Close() }() //nolint:errcheck

	// Wire the decision pipeline.
	evaluateUC := usecase.NewEvaluateApplicantUseCase(
		service.NewRiskModel(),
		service.NewCalibrator(),
		service.NewProductMatcher(),
		service.NewPolicyEngine(),
		service.NewExplainer(),
		publisher,
		cfg.TenantID,
	)
	recommendUC := usecase.NewRecommendProductUseCase(service.NewProductMatcher())
	batchUC := usecase.NewBatchEvaluateUseCase(evaluateUC)

	// HTTP server.
	meter := meterProvider.Meter("scoring")
	restHandler, err := rest.NewScoringHandler(evaluateUC, recommendUC, batchUC, meter, logger)
	if err != nil {
		logger.Error("failed to create HTTP handler", "error", err)
		return
	}

	mux := http.NewServeMux()
	restHandler.RegisterRoutes(mux)
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	limiter := middleware.NewPerClientRateLimiter(50)
	handler := middleware.LoggingMiddleware(logger)(
		middleware.PerClientRateLimitMiddleware(limiter)(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC server.
	grpcHandler := grpcPresentation.NewScoringHandler(evaluateUC, recommendUC, batchUC, logger)
	grpcServer := grpcPresentation.NewServer(grpcHandler, logger)

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("scoring-service stopped")
}
