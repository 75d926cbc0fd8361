package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/platform/logger"
)

// Recorder es lo que el consumer necesita del dominio.
type Recorder interface {
	RecordMetric(ctx context.Context, in metrics.RecordInput) (metrics.DailyMetric, error)
}

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Consumer lee registros diarios de Kafka y los graba vía Recorder.
type Consumer struct {
	reader   *kafkago.Reader
	recorder Recorder
	log      logger.Logger
}

func NewConsumer(cfg ConsumerConfig, recorder Recorder, log logger.Logger) *Consumer {
	return &Consumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:  cfg.Brokers,
			Topic:    cfg.Topic,
			GroupID:  cfg.GroupID,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		}),
		recorder: recorder,
		log:      log.With(map[string]any{"component": "kafka_consumer", "topic": cfg.Topic}),
	}
}

// Run consume hasta que ctx se cancela. Los mensajes inválidos o duplicados se loguean
// y se confirman igual para no trabar la partición.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		if err := c.Handle(ctx, msg.Value); err != nil {
			// errores de backend: no confirmamos, se reintenta al reiniciar
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("failed to commit message: %w", err)
		}
	}
}

// Handle procesa un payload. Devuelve error sólo si conviene no confirmar el mensaje.
func (c *Consumer) Handle(ctx context.Context, value []byte) error {
	in, err := Decode(value)
	if err != nil {
		c.log.Warn("skipping invalid metric message", map[string]any{"error": err.Error()})
		return nil
	}

	m, err := c.recorder.RecordMetric(ctx, in)
	switch {
	case err == nil:
		c.log.Debug("metric recorded", map[string]any{
			"animal_id": m.AnimalID,
			"date":      m.Date.Format(metrics.DateLayout),
		})
		return nil
	case errors.Is(err, metrics.ErrDuplicate),
		errors.Is(err, metrics.ErrInvalidInput),
		errors.Is(err, animals.ErrNotFound):
		c.log.Warn("skipping metric message", map[string]any{
			"animal_id": in.AnimalID,
			"date":      in.Date.Format(metrics.DateLayout),
			"error":     err.Error(),
		})
		return nil
	default:
		return fmt.Errorf("record metric: %w", err)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
