package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
)

type ManifestRepository interface {
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	Update(ctx context.Context, aggregate *manifest.Manifest) error

	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// GetOpenForCourier returns the courier's CREATED manifest or an ObjectNotFoundError.
	GetOpenForCourier(ctx context.Context, courierID kernel.UUID) (*manifest.Manifest, error)

	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
