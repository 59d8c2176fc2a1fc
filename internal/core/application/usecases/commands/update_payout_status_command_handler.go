package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/payout"
)

// UpdatePayoutStatusCommandHandler moves a payout along
// PENDING, PROCESSING, PAID or FAILED. Amounts and items never change.
type UpdatePayoutStatusCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewUpdatePayoutStatusCommandHandler creates the handler.
func NewUpdatePayoutStatusCommandHandler(uowFactory PayoutUoWFactory) UpdatePayoutStatusCommandHandler {
	return UpdatePayoutStatusCommandHandler{uowFactory: uowFactory}
}

// Handle advances the payout under a row lock. Reaching PAID stamps paidAt.
func (h UpdatePayoutStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePayoutStatusCommand) (*payout.Payout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PayoutRepository()
	p, err := repo.GetForUpdate(ctx, cmd.PayoutID())
	if err != nil {
		return nil, err
	}
	if err = p.ChangeStatus(cmd.Target(), time.Now()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
