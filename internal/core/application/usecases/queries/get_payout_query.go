package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrGetPayoutQueryIsNotConstructed = errors.New(
	"GetPayoutQuery must be created via NewGetPayoutQuery constructor",
)

// GetPayoutQuery reads one payout with its items.
type GetPayoutQuery struct {
	payoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPayoutQuery(payoutID kernel.UUID) (GetPayoutQuery, error) {
	if err := payoutID.Validate(); err != nil {
		return GetPayoutQuery{}, err
	}
	return GetPayoutQuery{payoutID: payoutID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPayoutQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutQueryIsNotConstructed)
}

func (q GetPayoutQuery) PayoutID() kernel.UUID {
	return q.payoutID
}

type GetPayoutQueryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Type        string
	Status      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	NetAmount   kernel.Money
	PaidAt      *time.Time
	CreatedAt   time.Time
	Items       []PayoutItemResponse
}

type PayoutItemResponse struct {
	SourceType  string
	SourceID    kernel.UUID
	Amount      kernel.Money
	Description string
}
