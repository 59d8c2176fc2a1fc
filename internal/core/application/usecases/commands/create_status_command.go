package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrCreateStatusCommandIsNotConstructed = errors.New(
	"CreateStatusCommand must be created via NewCreateStatusCommand constructor",
)

// CreateStatusCommand adds a status to the registry.
type CreateStatusCommand struct {
	name     status.Name
	position int

	guard guard.ConstructorGuard
}

func NewCreateStatusCommand(name string, position int) (CreateStatusCommand, error) {
	n := status.Name(strings.TrimSpace(name))
	if err := n.Validate(); err != nil {
		return CreateStatusCommand{}, err
	}
	if position < 0 {
		return CreateStatusCommand{}, errs.NewValueIsOutOfRangeError("position", position, 0, "unbounded")
	}
	return CreateStatusCommand{name: n, position: position, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusCommandIsNotConstructed)
}

func (c CreateStatusCommand) Name() status.Name { return c.name }
func (c CreateStatusCommand) Position() int     { return c.position }
