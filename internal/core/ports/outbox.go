package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event waiting to be handed to the notification collaborator.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

type OutboxRepository interface {
	// FetchUnpublished returns up to limit messages in occurrence order.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher hands one message to the notification collaborator.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}

// NumberGenerator produces human-legible identifiers. Uniqueness is checked by
// the caller against persistence.
type NumberGenerator interface {
	NextTrackingNumber() string
	NextManifestNumber() string
}
