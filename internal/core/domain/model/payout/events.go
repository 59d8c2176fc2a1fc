package payout

import (
	"time"

	"courierhub/internal/core/domain/model/event"
	"courierhub/internal/core/domain/model/kernel"
)

const (
	CreatedEventName       = "payout.created"
	StatusChangedEventName = "payout.status_changed"
)

type Created struct {
	event.Base
	UserID    kernel.UUID
	Type      Type
	NetAmount kernel.Money
	ItemCount int
}

func (Created) Name() string { return CreatedEventName }

func (e Created) Payload() map[string]any {
	return map[string]any{
		"payout_id":   e.AggregateID().String(),
		"user_id":     e.UserID.String(),
		"type":        e.Type.String(),
		"net_amount":  e.NetAmount.String(),
		"item_count":  e.ItemCount,
		"occurred_at": e.OccurredAt().Format(time.RFC3339Nano),
	}
}

type StatusChanged struct {
	event.Base
	UserID kernel.UUID
	From   Status
	To     Status
}

func (StatusChanged) Name() string { return StatusChangedEventName }

func (e StatusChanged) Payload() map[string]any {
	return map[string]any{
		"payout_id":   e.AggregateID().String(),
		"user_id":     e.UserID.String(),
		"from":        e.From.String(),
		"to":          e.To.String(),
		"occurred_at": e.OccurredAt().Format(time.RFC3339Nano),
	}
}
