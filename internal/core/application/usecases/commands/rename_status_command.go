package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/guard"
)

var ErrRenameStatusCommandIsNotConstructed = errors.New(
	"RenameStatusCommand must be created via NewRenameStatusCommand constructor",
)

type RenameStatusCommand struct {
	statusID kernel.UUID
	newName  status.Name

	guard guard.ConstructorGuard
}

func NewRenameStatusCommand(statusID kernel.UUID, newName string) (RenameStatusCommand, error) {
	n := status.Name(strings.TrimSpace(newName))
	if err := errors.Join(statusID.Validate(), n.Validate()); err != nil {
		return RenameStatusCommand{}, err
	}
	return RenameStatusCommand{statusID: statusID, newName: n, guard: guard.NewConstructorGuard()}, nil
}

func (c RenameStatusCommand) Validate() error {
	return c.guard.Validate(ErrRenameStatusCommandIsNotConstructed)
}

func (c RenameStatusCommand) StatusID() kernel.UUID { return c.statusID }
func (c RenameStatusCommand) NewName() status.Name  { return c.newName }
