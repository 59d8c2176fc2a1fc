package commands

import (
	"errors"

	"courierhub/internal/pkg/guard"
)

var ErrSeedStatusesCommandIsNotConstructed = errors.New(
	"SeedStatusesCommand must be created via NewSeedStatusesCommand constructor",
)

// SeedStatusesCommand inserts the canonical vocabulary where it is missing.
type SeedStatusesCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedStatusesCommand() SeedStatusesCommand {
	return SeedStatusesCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedStatusesCommand) Validate() error {
	return c.guard.Validate(ErrSeedStatusesCommandIsNotConstructed)
}
