// internal/infrastructure/messaging/kafka/producer.go
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/petalline/storefront/internal/config"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer writes order events to a single topic. Writes are synchronous so
// the caller learns whether the broker accepted the message.
type Producer struct {
	w      *kafka.Writer
	logger logrus.FieldLogger
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg config.KafkaConfig, logger logrus.FieldLogger) *Producer {
	batch := cfg.BufferSize
	if batch <= 0 {
		batch = 1
	}

	return &Producer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchSize:              batch,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// Publish writes one keyed message
func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", p.w.Topic, err)
	}

	p.logger.WithFields(logrus.Fields{
		"topic": p.w.Topic,
		"key":   string(key),
		"bytes": len(value),
	}).Debug("Message written")
	return nil
}

// Close flushes pending writes and closes the writer
func (p *Producer) Close() error {
	return p.w.Close()
}
