package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-health-dashboard/internal/adapters/messaging/kafka"
	"pet-health-dashboard/internal/config"
	"pet-health-dashboard/internal/dashboard"
	"pet-health-dashboard/internal/platform/logger"
	"pet-health-dashboard/internal/router"
)

// ingest consume registros diarios publicados por comederos y bebederos
// y los graba en el mismo store que lee el dashboard.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("failed to load configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log := logger.New(cfg.Log).With(map[string]any{"cmd": "ingest"})

	if cfg.Storage.Backend == config.StorageMemory {
		log.Warn("in-memory storage: ingested metrics will not be visible to the api process", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := router.OpenBackend(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open backend", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = closeBackend() }()

	svc := dashboard.NewService(backend, dashboard.Options{Alerts: router.GeneratorConfig(cfg)})

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.TopicMetrics,
		GroupID: cfg.Kafka.GroupID,
	}, svc, log)
	defer func() { _ = consumer.Close() }()

	log.Info("consuming daily metrics", map[string]any{"brokers": cfg.Kafka.Brokers, "topic": cfg.Kafka.TopicMetrics})
	if err := consumer.Run(ctx); err != nil {
		log.Error("consumer stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("consumer stopped", nil)
}
