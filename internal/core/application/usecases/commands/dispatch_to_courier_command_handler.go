package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"go.uber.org/zap"
)

// DispatchToCourierCommandHandler assigns shipments to the courier's open
// manifest, creating one when the courier has none. Each shipment is its own
// unit of work; the courier row is locked so concurrent dispatches share a manifest.
type DispatchToCourierCommandHandler struct {
	uowFactory WarehouseUoWFactory
	numbers    ports.NumberGenerator
	log        *zap.Logger
}

// NewDispatchToCourierCommandHandler needs a number generator for new manifests.
func NewDispatchToCourierCommandHandler(
	uowFactory WarehouseUoWFactory,
	numbers ports.NumberGenerator,
	log *zap.Logger,
) DispatchToCourierCommandHandler {
	return DispatchToCourierCommandHandler{uowFactory: uowFactory, numbers: numbers, log: log}
}

// Handle fails as a whole only when the courier is unknown or not a courier.
func (h DispatchToCourierCommandHandler) Handle(ctx context.Context, cmd DispatchToCourierCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}
	if _, err := requireCourier(ctx, h.uowFactory.Create(), cmd.CourierID()); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, shipmentID := range cmd.ShipmentIDs() {
		if err := h.dispatch(ctx, cmd.CourierID(), shipmentID); err != nil {
			h.log.Warn("dispatch failed",
				zap.String("courier_id", cmd.CourierID().String()),
				zap.String("shipment_id", shipmentID.String()),
				zap.Error(err))
			result.fail(shipmentID.String(), err)
			continue
		}
		result.Processed++
	}
	return result, nil
}

func (h DispatchToCourierCommandHandler) dispatch(ctx context.Context, courierID, shipmentID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courier, err := uow.UserRepository().GetForUpdate(ctx, courierID)
	if err != nil {
		return err
	}

	assigned, err := uow.StatusRepository().GetByName(ctx, status.AssignedToCourier)
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	m, err := h.openManifest(ctx, uow.ManifestRepository(), courierID)
	if err != nil {
		return err
	}

	note := fmt.Sprintf("Assigned to courier %s (manifest %s)", courier.Name(), m.Number())
	if err = s.AssignToManifest(m.ID(), courierID, assigned, note, time.Now()); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// openManifest returns the courier's CREATED manifest or adds a new one in the
// current transaction.
func (h DispatchToCourierCommandHandler) openManifest(
	ctx context.Context,
	repo ports.ManifestRepository,
	courierID kernel.UUID,
) (*manifest.Manifest, error) {
	m, err := repo.GetOpenForCourier(ctx, courierID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	number, err := uniqueNumber(ctx, "manifest number", h.numbers.NextManifestNumber, repo.ExistsByNumber)
	if err != nil {
		return nil, err
	}
	m, err = manifest.NewManifest(kernel.NewUUID(), number, courierID, time.Now())
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// requireCourier reads the user in a short transaction of its own and checks
// the COURIER role.
func requireCourier(ctx context.Context, uow WarehouseUoW, courierID kernel.UUID) (*user.User, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, courierID)
	if err != nil {
		return nil, err
	}
	if err = u.RequireRole(user.Courier); err != nil {
		return nil, err
	}
	return u, nil
}
