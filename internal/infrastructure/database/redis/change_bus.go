// internal/infrastructure/database/redis/change_bus.go
package redis

import (
	"context"
	"fmt"

	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ChangeBus carries changed cart keys over a Redis pub/sub channel so that
// every instance, and every open view behind it, can re-read the record.
type ChangeBus struct {
	client  *redis.Client
	channel string
	logger  logrus.FieldLogger
}

var _ cart.Broadcaster = (*ChangeBus)(nil)

// NewChangeBus creates a pub/sub change bus on channel
func NewChangeBus(client *redis.Client, channel string, logger logrus.FieldLogger) *ChangeBus {
	return &ChangeBus{client: client, channel: channel, logger: logger}
}

// Publish announces that key changed. The payload is the key only.
func (b *ChangeBus) Publish(ctx context.Context, key string) error {
	if err := b.client.Publish(ctx, b.channel, key).Err(); err != nil {
		return fmt.Errorf("failed to publish cart change: %w", err)
	}
	return nil
}

// Subscribe forwards changed keys until ctx is done
func (b *ChangeBus) Subscribe(ctx context.Context) (<-chan string, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)

	// Wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				default:
					b.logger.WithField("key", msg.Payload).Debug("Dropping cart change for slow subscriber")
				}
			}
		}
	}()

	return out, nil
}
