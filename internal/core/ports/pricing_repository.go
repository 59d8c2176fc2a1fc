package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
)

type PricingRepository interface {
	AddZone(ctx context.Context, zone *pricing.Zone) error

	GetZone(ctx context.Context, id kernel.UUID) (*pricing.Zone, error)

	AddOverride(ctx context.Context, price *pricing.MerchantZonePrice) error

	// GetActiveOverride returns an ObjectNotFoundError when the merchant has no
	// active price in the zone.
	GetActiveOverride(ctx context.Context, merchantID, zoneID kernel.UUID) (*pricing.MerchantZonePrice, error)
}

// SettingRepository is the key-value settings store.
type SettingRepository interface {
	// Get returns nil when the key is absent.
	Get(ctx context.Context, key string) (*string, error)

	Set(ctx context.Context, key, value string) error
}
