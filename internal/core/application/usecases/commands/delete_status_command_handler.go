package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"
)

// DeleteStatusCommandHandler removes optional statuses.
type DeleteStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewDeleteStatusCommandHandler(uowFactory StatusUoWFactory) DeleteStatusCommandHandler {
	return DeleteStatusCommandHandler{uowFactory: uowFactory}
}

// Handle removes a status that neither the workflow nor any shipment uses.
func (h DeleteStatusCommandHandler) Handle(ctx context.Context, cmd DeleteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StatusRepository()
	current, err := repo.Get(ctx, cmd.StatusID())
	if err != nil {
		return err
	}
	if status.IsRequiredByWorkflow(current.Name()) {
		return errs.NewConflictError("status",
			fmt.Errorf("%s is required by the workflow and cannot be deleted", current.Name()))
	}

	inUse, err := repo.IsInUse(ctx, current.ID())
	if err != nil {
		return err
	}
	if inUse {
		return errs.NewConflictError("status", fmt.Errorf("%s is held by at least one shipment", current.Name()))
	}

	if err = repo.Delete(ctx, current.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
