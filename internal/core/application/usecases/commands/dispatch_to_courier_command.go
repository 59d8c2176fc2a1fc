package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrDispatchToCourierCommandIsNotConstructed = errors.New(
	"DispatchToCourierCommand must be created via NewDispatchToCourierCommand constructor",
)

// DispatchToCourierCommand hands hub shipments to a courier.
type DispatchToCourierCommand struct {
	courierID   kernel.UUID
	shipmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewDispatchToCourierCommand(courierID kernel.UUID, shipmentIDs []kernel.UUID) (DispatchToCourierCommand, error) {
	var idsErr error
	if len(shipmentIDs) == 0 {
		idsErr = errs.NewValueIsRequiredError("shipment ids")
	}
	if err := errors.Join(courierID.Validate(), idsErr); err != nil {
		return DispatchToCourierCommand{}, err
	}
	ids := make([]kernel.UUID, len(shipmentIDs))
	copy(ids, shipmentIDs)
	return DispatchToCourierCommand{courierID: courierID, shipmentIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchToCourierCommand) Validate() error {
	return c.guard.Validate(ErrDispatchToCourierCommandIsNotConstructed)
}

func (c DispatchToCourierCommand) CourierID() kernel.UUID { return c.courierID }

func (c DispatchToCourierCommand) ShipmentIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.shipmentIDs))
	copy(out, c.shipmentIDs)
	return out
}
