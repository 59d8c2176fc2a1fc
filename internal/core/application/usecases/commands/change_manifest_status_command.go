package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/pkg/guard"
)

var ErrChangeManifestStatusCommandIsNotConstructed = errors.New(
	"ChangeManifestStatusCommand must be created via NewChangeManifestStatusCommand constructor",
)

type ChangeManifestStatusCommand struct {
	manifestID kernel.UUID
	target     manifest.Status

	guard guard.ConstructorGuard
}

func NewChangeManifestStatusCommand(manifestID kernel.UUID, statusName string) (ChangeManifestStatusCommand, error) {
	target, parseErr := manifest.ParseStatus(strings.TrimSpace(statusName))
	if err := errors.Join(manifestID.Validate(), parseErr); err != nil {
		return ChangeManifestStatusCommand{}, err
	}
	return ChangeManifestStatusCommand{manifestID: manifestID, target: target, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeManifestStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeManifestStatusCommandIsNotConstructed)
}

func (c ChangeManifestStatusCommand) ManifestID() kernel.UUID { return c.manifestID }
func (c ChangeManifestStatusCommand) Target() manifest.Status { return c.target }
