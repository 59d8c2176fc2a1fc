package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
)

type PayoutRepository interface {
	// Add writes a sealed payout and all of its items.
	Add(ctx context.Context, aggregate *payout.Payout) error

	// Update writes status, paid time and updated time only; items are immutable.
	Update(ctx context.Context, aggregate *payout.Payout) error

	Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error)

	// GetForUpdate reads the payout and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payout.Payout, error)
}
