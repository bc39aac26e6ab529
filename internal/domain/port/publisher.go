package port

import (
	"context"

	"github.com/Ismat-Samadov/BNPL-scoring/pkg/events"
)

// EventPublisher emits domain events to the scoring event stream.
// Publishing is best effort from the caller's perspective: a failed publish
// must never fail the evaluation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
	Close() error
}
