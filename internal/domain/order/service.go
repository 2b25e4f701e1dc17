// internal/domain/order/service.go
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Submitter hands a placed order off
type Submitter interface {
	Submit(ctx context.Context, o *Order) error
}

// SimulatedSubmitter waits a fixed delay and always succeeds
type SimulatedSubmitter struct {
	delay  time.Duration
	logger logrus.FieldLogger
}

// NewSimulatedSubmitter creates a new simulated submitter
func NewSimulatedSubmitter(delay time.Duration, logger logrus.FieldLogger) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay, logger: logger}
}

// Submit waits for the delay. A cancelled context ends the wait early and nothing is submitted.
func (s *SimulatedSubmitter) Submit(ctx context.Context, o *Order) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, ctx.Err())
	case <-timer.C:
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": o.Number,
		"items":        len(o.Items),
		"total":        o.Summary.Total,
	}).Info("Order submitted")
	return nil
}

// EventPublisher writes a keyed message to the order topic
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// EventSubmitter publishes each order as an OrderPlaced event
type EventSubmitter struct {
	publisher EventPublisher
	producer  string
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewEventSubmitter creates a submitter over an event publisher
func NewEventSubmitter(publisher EventPublisher, producer string, logger logrus.FieldLogger) *EventSubmitter {
	return &EventSubmitter{
		publisher: publisher,
		producer:  producer,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit publishes the order keyed by its number
func (s *EventSubmitter) Submit(ctx context.Context, o *Order) error {
	env, err := NewEnvelope(EventOrderPlaced, s.producer, o.Number, o, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	if err := s.publisher.Publish(ctx, []byte(o.Number), value); err != nil {
		s.logger.WithFields(logrus.Fields{"order_number": o.Number, "error": err.Error()}).Error("Failed to publish order")
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": o.Number,
		"event_id":     env.EventID,
	}).Info("Order published")
	return nil
}
