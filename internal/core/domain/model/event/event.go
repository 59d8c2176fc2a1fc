// Package event defines the domain events aggregates record while they change.
// The unit of work pulls them on commit and writes them to the outbox.
package event

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
)

// Event is a fact about an aggregate, serialised into the outbox as Payload.
type Event interface {
	ID() kernel.UUID
	Name() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
	Payload() map[string]any
}

// Source is implemented by aggregates that record events.
type Source interface {
	PullEvents() []Event
}

// Base carries the envelope every event shares.
type Base struct {
	id          kernel.UUID
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func NewBase(aggregateID kernel.UUID, occurredAt time.Time) Base {
	return Base{id: kernel.NewUUID(), aggregateID: aggregateID, occurredAt: occurredAt.UTC()}
}

func (b Base) ID() kernel.UUID          { return b.id }
func (b Base) AggregateID() kernel.UUID { return b.aggregateID }
func (b Base) OccurredAt() time.Time    { return b.occurredAt }

// Recorder buffers events until they are pulled.
type Recorder struct {
	events []Event
}

func (r *Recorder) Record(e Event) {
	r.events = append(r.events, e)
}

// PullEvents returns the buffered events and clears the buffer.
func (r *Recorder) PullEvents() []Event {
	out := r.events
	r.events = nil
	return out
}
