package commands

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
)

// SeedStatusesCommandHandler installs the canonical workflow statuses.
type SeedStatusesCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewSeedStatusesCommandHandler(uowFactory StatusUoWFactory) SeedStatusesCommandHandler {
	return SeedStatusesCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many statuses were inserted. Running it twice inserts nothing
// the second time; existing statuses keep their ids and positions.
func (h SeedStatusesCommandHandler) Handle(ctx context.Context, cmd SeedStatusesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StatusRepository()
	registry, err := loadRegistry(ctx, repo)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for position, name := range status.CanonicalNames() {
		if registry.Exists(name) {
			continue
		}
		s, err := status.NewStatus(kernel.NewUUID(), name, position)
		if err != nil {
			return 0, err
		}
		if err = repo.Add(ctx, s); err != nil {
			return 0, err
		}
		inserted++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}
