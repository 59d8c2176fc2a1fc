package commands

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"
)

// RenameStatusCommandHandler renames optional statuses.
type RenameStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewRenameStatusCommandHandler(uowFactory StatusUoWFactory) RenameStatusCommandHandler {
	return RenameStatusCommandHandler{uowFactory: uowFactory}
}

// Handle renames a status. Statuses the workflow looks up by name keep their
// name, and the new name must be free.
func (h RenameStatusCommandHandler) Handle(ctx context.Context, cmd RenameStatusCommand) (status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return status.Status{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return status.Status{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StatusRepository()
	current, err := repo.Get(ctx, cmd.StatusID())
	if err != nil {
		return status.Status{}, err
	}
	if current.Name() == cmd.NewName() {
		return current, nil
	}
	if status.IsRequiredByWorkflow(current.Name()) {
		return status.Status{}, errs.NewConflictError("status name",
			fmt.Errorf("%s is required by the workflow and cannot be renamed", current.Name()))
	}

	_, err = repo.GetByName(ctx, cmd.NewName())
	switch {
	case err == nil:
		return status.Status{}, errs.NewConflictError("status name", fmt.Errorf("%s already exists", cmd.NewName()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return status.Status{}, err
	}

	renamed, err := current.Renamed(cmd.NewName())
	if err != nil {
		return status.Status{}, err
	}
	if err = repo.Update(ctx, renamed); err != nil {
		return status.Status{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return status.Status{}, err
	}
	return renamed, nil
}
