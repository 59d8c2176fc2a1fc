package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
)

// AdvanceShipmentCommandHandler applies one status change. The row update and
// its history row commit together.
type AdvanceShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAdvanceShipmentCommandHandler creates the handler for manual status changes.
func NewAdvanceShipmentCommandHandler(uowFactory ShipmentUoWFactory) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{uowFactory: uowFactory}
}

// Handle validates the command and moves the shipment to the requested status.
// A terminal shipment yields a ConflictError and a stale version a
// VersionIsInvalidError; neither leaves a history row behind.
//
// Example:
//
//	cmd, err := NewAdvanceShipmentCommand(shipmentID, "DELIVERED", "left at door")
//	if err != nil {
//	    return err
//	}
//	s, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("shipment is already final")
//	}
func (h AdvanceShipmentCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return changeShipmentStatus(ctx, h.uowFactory, cmd.ShipmentID(), cmd.Target(), cmd.Note())
}

func changeShipmentStatus(
	ctx context.Context,
	uowFactory ShipmentUoWFactory,
	shipmentID kernel.UUID,
	target status.Name,
	note string,
) (*shipment.Shipment, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	next, err := uow.StatusRepository().GetByName(ctx, target)
	if err != nil {
		return nil, err
	}

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err = s.ChangeStatus(next, note, time.Now()); err != nil {
		return nil, err
	}
	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
