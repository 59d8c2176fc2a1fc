package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"go.uber.org/zap"
)

const receivedAtHubNote = "Received at hub"

// ReceiveAtHubCommandHandler moves each scanned shipment to RECEIVED_AT_HUB in
// its own unit of work. A failed item is reported and skipped.
type ReceiveAtHubCommandHandler struct {
	uowFactory ShipmentUoWFactory
	log        *zap.Logger
}

func NewReceiveAtHubCommandHandler(uowFactory ShipmentUoWFactory, log *zap.Logger) ReceiveAtHubCommandHandler {
	return ReceiveAtHubCommandHandler{uowFactory: uowFactory, log: log}
}

// Handle looks up each tracking number and moves it to RECEIVED_AT_HUB.
// Unknown numbers and refused transitions are collected in BatchResult.Errors.
//
// Example:
//
//	cmd, _ := NewReceiveAtHubCommand([]string{"CS-1A2B", "CS-3C4D"})
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, failure := range result.Errors {
//	    log.Println(failure)
//	}
func (h ReceiveAtHubCommandHandler) Handle(ctx context.Context, cmd ReceiveAtHubCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, trackingNumber := range cmd.TrackingNumbers() {
		if err := h.receive(ctx, trackingNumber); err != nil {
			h.log.Warn("receive at hub failed", zap.String("tracking_number", trackingNumber), zap.Error(err))
			result.fail(trackingNumber, err)
			continue
		}
		result.Processed++
	}
	return result, nil
}

func (h ReceiveAtHubCommandHandler) receive(ctx context.Context, trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	received, err := uow.StatusRepository().GetByName(ctx, status.ReceivedAtHub)
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return err
	}
	if err = s.ChangeStatus(received, receivedAtHubNote, time.Now()); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
