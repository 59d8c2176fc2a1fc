package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/pkg/guard"
)

var ErrUpdatePayoutStatusCommandIsNotConstructed = errors.New(
	"UpdatePayoutStatusCommand must be created via NewUpdatePayoutStatusCommand constructor",
)

type UpdatePayoutStatusCommand struct {
	payoutID kernel.UUID
	target   payout.Status

	guard guard.ConstructorGuard
}

// NewUpdatePayoutStatusCommand parses statusName, e.g. "PAID".
func NewUpdatePayoutStatusCommand(payoutID kernel.UUID, statusName string) (UpdatePayoutStatusCommand, error) {
	target, parseErr := payout.ParseStatus(strings.TrimSpace(statusName))
	if err := errors.Join(payoutID.Validate(), parseErr); err != nil {
		return UpdatePayoutStatusCommand{}, err
	}
	return UpdatePayoutStatusCommand{payoutID: payoutID, target: target, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePayoutStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePayoutStatusCommandIsNotConstructed)
}

func (c UpdatePayoutStatusCommand) PayoutID() kernel.UUID { return c.payoutID }
func (c UpdatePayoutStatusCommand) Target() payout.Status { return c.target }
