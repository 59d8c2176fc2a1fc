package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
)

type StatusRepository interface {
	Add(ctx context.Context, s status.Status) error

	Update(ctx context.Context, s status.Status) error

	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (status.Status, error)

	GetByName(ctx context.Context, name status.Name) (status.Status, error)

	// All returns every status ordered by position.
	All(ctx context.Context) ([]status.Status, error)

	// IsInUse reports whether any shipment currently holds the status.
	IsInUse(ctx context.Context, id kernel.UUID) (bool, error)
}
