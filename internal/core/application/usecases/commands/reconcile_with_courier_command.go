package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrReconcileWithCourierCommandIsNotConstructed = errors.New(
	"ReconcileWithCourierCommand must be created via NewReconcileWithCourierCommand constructor",
)

// ReconcileWithCourierCommand closes a courier's round at the hub: cash handed
// over for some shipments, parcels brought back for others.
type ReconcileWithCourierCommand struct {
	courierID        kernel.UUID
	cashConfirmedIDs []kernel.UUID
	returnedIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

func NewReconcileWithCourierCommand(
	courierID kernel.UUID,
	cashConfirmedIDs, returnedIDs []kernel.UUID,
) (ReconcileWithCourierCommand, error) {
	var idsErr error
	if len(cashConfirmedIDs) == 0 && len(returnedIDs) == 0 {
		idsErr = errs.NewValueIsRequiredError("shipment ids")
	}
	if err := errors.Join(courierID.Validate(), idsErr); err != nil {
		return ReconcileWithCourierCommand{}, err
	}
	return ReconcileWithCourierCommand{
		courierID:        courierID,
		cashConfirmedIDs: append([]kernel.UUID(nil), cashConfirmedIDs...),
		returnedIDs:      append([]kernel.UUID(nil), returnedIDs...),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileWithCourierCommand) Validate() error {
	return c.guard.Validate(ErrReconcileWithCourierCommandIsNotConstructed)
}

func (c ReconcileWithCourierCommand) CourierID() kernel.UUID { return c.courierID }

func (c ReconcileWithCourierCommand) CashConfirmedIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.cashConfirmedIDs...)
}

func (c ReconcileWithCourierCommand) ReturnedIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.returnedIDs...)
}
