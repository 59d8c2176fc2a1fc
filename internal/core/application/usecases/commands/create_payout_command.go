package commands

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrCreateCourierPayoutCommandIsNotConstructed = errors.New(
		"CreateCourierPayoutCommand must be created via NewCreateCourierPayoutCommand constructor",
	)
	ErrCreateMerchantPayoutCommandIsNotConstructed = errors.New(
		"CreateMerchantPayoutCommand must be created via NewCreateMerchantPayoutCommand constructor",
	)
)

// settlementPeriod is the half-open range [start, end) of delivery times a payout covers.
type settlementPeriod struct {
	userID kernel.UUID
	start  time.Time
	end    time.Time
}

func newSettlementPeriod(userID kernel.UUID, start, end time.Time) (settlementPeriod, error) {
	var periodErr error
	if !start.Before(end) {
		periodErr = errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	if err := errors.Join(userID.Validate(), periodErr); err != nil {
		return settlementPeriod{}, err
	}
	return settlementPeriod{userID: userID, start: start.UTC(), end: end.UTC()}, nil
}

// CreateCourierPayoutCommand settles a courier's delivered shipments.
type CreateCourierPayoutCommand struct {
	period settlementPeriod

	guard guard.ConstructorGuard
}

func NewCreateCourierPayoutCommand(courierID kernel.UUID, periodStart, periodEnd time.Time) (CreateCourierPayoutCommand, error) {
	period, err := newSettlementPeriod(courierID, periodStart, periodEnd)
	if err != nil {
		return CreateCourierPayoutCommand{}, err
	}
	return CreateCourierPayoutCommand{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCourierPayoutCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierPayoutCommandIsNotConstructed)
}

func (c CreateCourierPayoutCommand) CourierID() kernel.UUID { return c.period.userID }
func (c CreateCourierPayoutCommand) PeriodStart() time.Time { return c.period.start }
func (c CreateCourierPayoutCommand) PeriodEnd() time.Time   { return c.period.end }

// CreateMerchantPayoutCommand settles the delivery fees of a merchant's shipments.
type CreateMerchantPayoutCommand struct {
	period settlementPeriod

	guard guard.ConstructorGuard
}

func NewCreateMerchantPayoutCommand(merchantID kernel.UUID, periodStart, periodEnd time.Time) (CreateMerchantPayoutCommand, error) {
	period, err := newSettlementPeriod(merchantID, periodStart, periodEnd)
	if err != nil {
		return CreateMerchantPayoutCommand{}, err
	}
	return CreateMerchantPayoutCommand{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateMerchantPayoutCommand) Validate() error {
	return c.guard.Validate(ErrCreateMerchantPayoutCommandIsNotConstructed)
}

func (c CreateMerchantPayoutCommand) MerchantID() kernel.UUID { return c.period.userID }
func (c CreateMerchantPayoutCommand) PeriodStart() time.Time  { return c.period.start }
func (c CreateMerchantPayoutCommand) PeriodEnd() time.Time    { return c.period.end }
