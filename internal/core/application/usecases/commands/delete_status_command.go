package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrDeleteStatusCommandIsNotConstructed = errors.New(
	"DeleteStatusCommand must be created via NewDeleteStatusCommand constructor",
)

type DeleteStatusCommand struct {
	statusID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteStatusCommand(statusID kernel.UUID) (DeleteStatusCommand, error) {
	if err := statusID.Validate(); err != nil {
		return DeleteStatusCommand{}, err
	}
	return DeleteStatusCommand{statusID: statusID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusCommandIsNotConstructed)
}

func (c DeleteStatusCommand) StatusID() kernel.UUID { return c.statusID }
