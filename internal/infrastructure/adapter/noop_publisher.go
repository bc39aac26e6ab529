package adapter

import (
	"context"
	"log/slog"

	"github.com/Ismat-Samadov/BNPL-scoring/pkg/events"
)

// NoopEventPublisher drops events. Used when no Kafka brokers are
// configured, keeping the decision pipeline runnable standalone.
type NoopEventPublisher struct {
	logger *slog.Logger
}

// NewNoopEventPublisher creates the no-op publisher.
func NewNoopEventPublisher(logger *slog.Logger) *NoopEventPublisher {
	return &NoopEventPublisher{logger: logger}
}

// Publish logs at debug level and discards the events.
func (p *NoopEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.DebugContext(ctx, "dropping event, no broker configured",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}

// Close is a no-op.
func (p *NoopEventPublisher) Close() error { return nil }
