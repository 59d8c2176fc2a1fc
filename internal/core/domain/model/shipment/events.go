package shipment

import (
	"time"

	"courierhub/internal/core/domain/model/event"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
)

const (
	StatusChangedEventName = "shipment.status_changed"
	ReturnCreatedEventName = "shipment.return_created"
)

// StatusChanged is recorded for every history row, including creation (From is empty).
type StatusChanged struct {
	event.Base
	TrackingNumber string
	MerchantID     kernel.UUID
	From           status.Name
	To             status.Name
	Note           string
}

func (StatusChanged) Name() string { return StatusChangedEventName }

func (e StatusChanged) Payload() map[string]any {
	return map[string]any{
		"shipment_id":     e.AggregateID().String(),
		"tracking_number": e.TrackingNumber,
		"merchant_id":     e.MerchantID.String(),
		"from":            e.From.String(),
		"to":              e.To.String(),
		"note":            e.Note,
		"occurred_at":     e.OccurredAt().Format(time.RFC3339Nano),
	}
}

// ReturnCreated is recorded on the mirror shipment of a return to origin.
type ReturnCreated struct {
	event.Base
	OriginalID           kernel.UUID
	ReturnTrackingNumber string
	MerchantID           kernel.UUID
	Reason               string
}

func (ReturnCreated) Name() string { return ReturnCreatedEventName }

func (e ReturnCreated) Payload() map[string]any {
	return map[string]any{
		"original_shipment_id":   e.OriginalID.String(),
		"return_shipment_id":     e.AggregateID().String(),
		"return_tracking_number": e.ReturnTrackingNumber,
		"merchant_id":            e.MerchantID.String(),
		"reason":                 e.Reason,
		"occurred_at":            e.OccurredAt().Format(time.RFC3339Nano),
	}
}
