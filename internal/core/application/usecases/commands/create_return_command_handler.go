package commands

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// CreatedReturn links the original shipment to its return.
type CreatedReturn struct {
	OriginalID           kernel.UUID
	ReturnID             kernel.UUID
	ReturnTrackingNumber string
}

// CreateReturnCommandHandler closes the original as RETURNED_TO_ORIGIN, opens
// its mirror shipment and links the two, all in one unit of work.
type CreateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	numbers    ports.NumberGenerator
}

// NewCreateReturnCommandHandler needs a number generator for the return's
// tracking number.
func NewCreateReturnCommandHandler(uowFactory ReturnUoWFactory, numbers ports.NumberGenerator) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{uowFactory: uowFactory, numbers: numbers}
}

// Handle moves the original to RETURNED_TO_ORIGIN and creates the mirror in
// the initial status. A shipment that is not eligible yields a ConflictError.
func (h CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) (CreatedReturn, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedReturn{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedReturn{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry, err := loadRegistry(ctx, uow.StatusRepository())
	if err != nil {
		return CreatedReturn{}, err
	}
	returned, err := registry.Lookup(status.ReturnedToOrigin)
	if err != nil {
		return CreatedReturn{}, err
	}
	initial, err := registry.Initial()
	if err != nil {
		return CreatedReturn{}, err
	}

	shipmentRepo := uow.ShipmentRepository()
	original, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return CreatedReturn{}, err
	}
	if !original.IsEligibleForReturn() {
		return CreatedReturn{}, errs.NewConflictError("return", fmt.Errorf(
			"shipment %s is %s and cannot be returned", original.TrackingNumber(), original.Status().Name()))
	}

	now := time.Now()
	if err = original.ChangeStatus(returned, "Returned to origin. Reason: "+cmd.Reason(), now); err != nil {
		return CreatedReturn{}, err
	}
	if err = shipmentRepo.Update(ctx, original); err != nil {
		return CreatedReturn{}, err
	}

	trackingNumber, err := uniqueNumber(ctx, "tracking number", h.numbers.NextTrackingNumber, shipmentRepo.ExistsByTrackingNumber)
	if err != nil {
		return CreatedReturn{}, err
	}
	mirror, err := shipment.NewReturnShipment(original, kernel.NewUUID(), trackingNumber, initial, cmd.Reason(), now)
	if err != nil {
		return CreatedReturn{}, err
	}
	if err = shipmentRepo.Add(ctx, mirror); err != nil {
		return CreatedReturn{}, err
	}

	link, err := shipment.NewReturnLink(kernel.NewUUID(), original.ID(), mirror.ID(), cmd.Reason(), now)
	if err != nil {
		return CreatedReturn{}, err
	}
	if err = uow.ReturnLinkRepository().Add(ctx, link); err != nil {
		return CreatedReturn{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedReturn{}, err
	}

	return CreatedReturn{
		OriginalID:           original.ID(),
		ReturnID:             mirror.ID(),
		ReturnTrackingNumber: mirror.TrackingNumber(),
	}, nil
}
