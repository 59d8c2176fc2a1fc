package payout

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
)

// ItemSourceShipment marks an item earned by a delivered shipment.
const ItemSourceShipment = "SHIPMENT"

// Item is an immutable payout line.
type Item struct {
	id          kernel.UUID
	payoutID    kernel.UUID
	sourceType  string
	sourceID    kernel.UUID
	amount      kernel.Money
	description string
	createdAt   time.Time
}

func RestoreItem(id, payoutID kernel.UUID, sourceType string, sourceID kernel.UUID, amount kernel.Money, description string, createdAt time.Time) Item {
	return Item{
		id:          id,
		payoutID:    payoutID,
		sourceType:  sourceType,
		sourceID:    sourceID,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
	}
}

func (i Item) ID() kernel.UUID       { return i.id }
func (i Item) PayoutID() kernel.UUID { return i.payoutID }
func (i Item) SourceType() string    { return i.sourceType }
func (i Item) SourceID() kernel.UUID { return i.sourceID }
func (i Item) Amount() kernel.Money  { return i.amount }
func (i Item) Description() string   { return i.description }
func (i Item) CreatedAt() time.Time  { return i.createdAt }
