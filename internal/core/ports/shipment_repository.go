package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipments together with their pending history.
// Update is optimistic: a stale version fails with errs.VersionIsInvalidError.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// FindCourierSettleable returns DELIVERED, cash-unreconciled shipments last
	// dispatched to courierID, delivered in [from, to) and not yet in a courier payout.
	FindCourierSettleable(ctx context.Context, courierID kernel.UUID, from, to time.Time) ([]*shipment.Shipment, error)

	// FindMerchantSettleable returns DELIVERED shipments of merchantID delivered
	// in [from, to) and not yet in a merchant payout.
	FindMerchantSettleable(ctx context.Context, merchantID kernel.UUID, from, to time.Time) ([]*shipment.Shipment, error)

	// CouriersWithSettleable lists couriers that have courier-settleable shipments in [from, to).
	CouriersWithSettleable(ctx context.Context, from, to time.Time) ([]kernel.UUID, error)

	History(ctx context.Context, shipmentID kernel.UUID) ([]shipment.HistoryEntry, error)
}

type ReturnLinkRepository interface {
	Add(ctx context.Context, link *shipment.ReturnLink) error

	GetByOriginal(ctx context.Context, originalID kernel.UUID) ([]*shipment.ReturnLink, error)
}
