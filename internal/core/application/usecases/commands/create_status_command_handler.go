package commands

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"
)

// CreateStatusCommandHandler adds an optional status to the registry.
type CreateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewCreateStatusCommandHandler creates the handler.
func NewCreateStatusCommandHandler(uowFactory StatusUoWFactory) CreateStatusCommandHandler {
	return CreateStatusCommandHandler{uowFactory: uowFactory}
}

// Handle inserts the status. A taken name is a conflict.
func (h CreateStatusCommandHandler) Handle(ctx context.Context, cmd CreateStatusCommand) (status.Status, error) {
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
	_, err := repo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		return status.Status{}, errs.NewConflictError("status name", fmt.Errorf("%s already exists", cmd.Name()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return status.Status{}, err
	}

	s, err := status.NewStatus(kernel.NewUUID(), cmd.Name(), cmd.Position())
	if err != nil {
		return status.Status{}, err
	}
	if err = repo.Add(ctx, s); err != nil {
		return status.Status{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return status.Status{}, err
	}
	return s, nil
}
