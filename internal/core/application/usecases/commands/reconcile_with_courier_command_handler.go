package commands

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"go.uber.org/zap"
)

// ReconcileWithCourierCommandHandler confirms cash and takes returned parcels
// back from a courier. Only shipments last dispatched to that courier are
// accepted. Cash ids are processed before returned ids, each in its own unit of work.
type ReconcileWithCourierCommandHandler struct {
	uowFactory WarehouseUoWFactory
	log        *zap.Logger
}

// NewReconcileWithCourierCommandHandler creates the reconciliation handler.
func NewReconcileWithCourierCommandHandler(uowFactory WarehouseUoWFactory, log *zap.Logger) ReconcileWithCourierCommandHandler {
	return ReconcileWithCourierCommandHandler{uowFactory: uowFactory, log: log}
}

// Handle marks the cash of delivered shipments as reconciled and takes
// returned parcels back to the hub. Only shipments carried by the courier are
// touched; the rest are reported per item.
func (h ReconcileWithCourierCommandHandler) Handle(ctx context.Context, cmd ReconcileWithCourierCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}
	courier, err := requireCourier(ctx, h.uowFactory.Create(), cmd.CourierID())
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, id := range cmd.CashConfirmedIDs() {
		note := "Cash reconciled with courier " + courier.Name()
		h.collect(&result, "cash", id, h.apply(ctx, cmd.CourierID(), id, func(s *shipment.Shipment, _ WarehouseUoW) error {
			if err := s.AppendNote(note, time.Now()); err != nil {
				return err
			}
			s.MarkCashReconciled()
			return nil
		}))
	}
	for _, id := range cmd.ReturnedIDs() {
		note := "Returned to hub by courier " + courier.Name()
		h.collect(&result, "return", id, h.apply(ctx, cmd.CourierID(), id, func(s *shipment.Shipment, uow WarehouseUoW) error {
			returned, err := uow.StatusRepository().GetByName(ctx, status.ReturnedToHub)
			if err != nil {
				return err
			}
			return s.ChangeStatus(returned, note, time.Now())
		}))
	}
	return result, nil
}

func (h ReconcileWithCourierCommandHandler) collect(result *BatchResult, kind string, id kernel.UUID, err error) {
	if err != nil {
		h.log.Warn("reconcile item failed", zap.String("kind", kind), zap.String("shipment_id", id.String()), zap.Error(err))
		result.fail(id.String(), err)
		return
	}
	result.Processed++
}

// apply loads the shipment, checks custody, runs change and saves it in one unit of work.
func (h ReconcileWithCourierCommandHandler) apply(
	ctx context.Context,
	courierID, shipmentID kernel.UUID,
	change func(*shipment.Shipment, WarehouseUoW) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}
	if !s.IsHeldBy(courierID) {
		return errs.NewAuthorizationError("courier", fmt.Errorf("shipment %s is not held by courier %s", s.TrackingNumber(), courierID))
	}

	if err = change(s, uow); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
