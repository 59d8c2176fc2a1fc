package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/manifest"
)

// ChangeManifestStatusCommandHandler moves a courier manifest through its own
// status machine.
type ChangeManifestStatusCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewChangeManifestStatusCommandHandler creates the manifest status handler.
func NewChangeManifestStatusCommandHandler(uowFactory ManifestUoWFactory) ChangeManifestStatusCommandHandler {
	return ChangeManifestStatusCommandHandler{uowFactory: uowFactory}
}

// Handle moves the manifest along CREATED, IN_PROGRESS, COMPLETED or to CANCELLED.
// Once a manifest leaves CREATED, further dispatches open a new one.
func (h ChangeManifestStatusCommandHandler) Handle(ctx context.Context, cmd ChangeManifestStatusCommand) (*manifest.Manifest, error) {
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

	repo := uow.ManifestRepository()
	m, err := repo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return nil, err
	}
	if err = m.ChangeStatus(cmd.Target(), time.Now()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
