package payout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/event"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var (
	ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout constructor")
	ErrPayoutIsSealed         = errors.New("payout items cannot change after the payout is sealed")
	ErrPayoutHasNoItems       = errors.New("payout has no items")
)

// Payout is one settlement batch for one user over one period. Its net amount
// is always the sum of its items. Items are only accepted until Seal.
type Payout struct {
	event.Recorder

	id          kernel.UUID
	userID      kernel.UUID
	payoutType  Type
	periodStart time.Time
	periodEnd   time.Time
	netAmount   kernel.Money
	status      Status
	items       []Item
	paidAt      *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	sealed        bool
	isConstructed bool
}

// NewPayout opens an empty PENDING payout for [periodStart, periodEnd).
func NewPayout(id, userID kernel.UUID, payoutType Type, periodStart, periodEnd, now time.Time) (*Payout, error) {
	var periodErr error
	if !periodStart.Before(periodEnd) {
		periodErr = errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("start %s is not before end %s", periodStart.Format(time.RFC3339), periodEnd.Format(time.RFC3339)))
	}
	if err := errors.Join(id.Validate(), userID.Validate(), payoutType.Validate(), periodErr); err != nil {
		return nil, err
	}
	now = now.UTC()
	return &Payout{
		id:            id,
		userID:        userID,
		payoutType:    payoutType,
		periodStart:   periodStart.UTC(),
		periodEnd:     periodEnd.UTC(),
		netAmount:     kernel.ZeroMoney,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreParams carry a persisted payout and its items.
type RestoreParams struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Type        Type
	PeriodStart time.Time
	PeriodEnd   time.Time
	NetAmount   kernel.Money
	Status      Status
	Items       []Item
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestorePayout rebuilds a sealed payout. Items may be omitted by readers that
// only need the header; when present they must add up to NetAmount.
func RestorePayout(p RestoreParams) (*Payout, error) {
	if err := errors.Join(p.ID.Validate(), p.UserID.Validate(), p.Type.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	if len(p.Items) > 0 {
		sum := kernel.ZeroMoney
		for _, item := range p.Items {
			sum = sum.Add(item.Amount())
		}
		if !sum.Equal(p.NetAmount) {
			return nil, errs.NewValueIsInvalidErrorWithCause("net amount",
				fmt.Errorf("%s does not equal the item sum %s", p.NetAmount, sum))
		}
	}
	return &Payout{
		id:            p.ID,
		userID:        p.UserID,
		payoutType:    p.Type,
		periodStart:   p.PeriodStart,
		periodEnd:     p.PeriodEnd,
		netAmount:     p.NetAmount,
		status:        p.Status,
		items:         p.Items,
		paidAt:        p.PaidAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		sealed:        true,
		isConstructed: true,
	}, nil
}

func (p *Payout) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPayoutIsNotConstructed
	}
	return nil
}

func (p *Payout) ID() kernel.UUID        { return p.id }
func (p *Payout) UserID() kernel.UUID    { return p.userID }
func (p *Payout) Type() Type             { return p.payoutType }
func (p *Payout) PeriodStart() time.Time { return p.periodStart }
func (p *Payout) PeriodEnd() time.Time   { return p.periodEnd }
func (p *Payout) Status() Status         { return p.status }
func (p *Payout) PaidAt() *time.Time     { return p.paidAt }
func (p *Payout) CreatedAt() time.Time   { return p.createdAt }
func (p *Payout) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Payout) IsSealed() bool         { return p.sealed }

// NetAmount equals the sum of the item amounts.
func (p *Payout) NetAmount() kernel.Money {
	return p.netAmount
}

func (p *Payout) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// AddItem appends a line and adds its amount to the net amount. A source can
// only appear once per payout.
func (p *Payout) AddItem(sourceType string, sourceID kernel.UUID, amount kernel.Money, description string) error {
	if p.sealed {
		return ErrPayoutIsSealed
	}
	if err := sourceID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(sourceType) == "" {
		return errs.NewValueIsRequiredError("item source type")
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("item amount", fmt.Errorf("%s is negative", amount))
	}
	for _, item := range p.items {
		if item.sourceType == sourceType && item.sourceID.IsEqual(sourceID) {
			return errs.NewConflictError("payout item", fmt.Errorf("%s %s is already in payout %s", sourceType, sourceID, p.id))
		}
	}

	p.items = append(p.items, Item{
		id:          kernel.NewUUID(),
		payoutID:    p.id,
		sourceType:  sourceType,
		sourceID:    sourceID,
		amount:      amount,
		description: description,
		createdAt:   p.createdAt,
	})
	p.netAmount = p.netAmount.Add(amount)
	return nil
}

// Seal freezes the items and records PayoutCreated. An empty payout cannot be sealed.
func (p *Payout) Seal() error {
	if p.sealed {
		return ErrPayoutIsSealed
	}
	if len(p.items) == 0 {
		return ErrPayoutHasNoItems
	}
	p.sealed = true
	p.Record(Created{
		Base:      event.NewBase(p.id, p.createdAt),
		UserID:    p.userID,
		Type:      p.payoutType,
		NetAmount: p.netAmount,
		ItemCount: len(p.items),
	})
	return nil
}

// ChangeStatus advances the payout. Reaching PAID stamps paidAt.
func (p *Payout) ChangeStatus(target Status, now time.Time) error {
	next, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}
	now = now.UTC()
	from := p.status
	p.status = next
	p.updatedAt = now
	if next == Paid {
		p.paidAt = &now
	}
	p.Record(StatusChanged{
		Base:   event.NewBase(p.id, now),
		UserID: p.userID,
		From:   from,
		To:     next,
	})
	return nil
}
