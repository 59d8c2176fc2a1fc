package queries

import (
	"errors"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery reads a shipment and its status ledger by tracking number.
//
// Example:
//
//	query, err := NewGetShipmentHistoryQuery("CS-1A2B3C")
//	if err != nil {
//	    return err
//	}
//	history, err := handler.Handle(ctx, query)
type GetShipmentHistoryQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewGetShipmentHistoryQuery(trackingNumber string) (GetShipmentHistoryQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return GetShipmentHistoryQuery{}, errs.NewValueIsRequiredError("tracking number")
	}
	return GetShipmentHistoryQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

func (q GetShipmentHistoryQuery) TrackingNumber() string {
	return q.trackingNumber
}

// GetShipmentHistoryQueryResponse lists history oldest first.
type GetShipmentHistoryQueryResponse struct {
	ShipmentID     kernel.UUID
	TrackingNumber string
	Status         string
	DeliveryFee    kernel.Money
	CODAmount      kernel.Money
	Entries        []HistoryEntryResponse
}

type HistoryEntryResponse struct {
	Status    string
	Note      string
	CreatedAt time.Time
}
