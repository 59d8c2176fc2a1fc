package commands

import (
	"context"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// CreatedShipment is what the caller needs to label a new parcel.
type CreatedShipment struct {
	ID             kernel.UUID
	TrackingNumber string
	DeliveryFee    kernel.Money
	FeeSource      services.FeeSource
}

// CreateShipmentCommandHandler resolves the fee, draws a free tracking number
// and stores the shipment with its first history row.
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
	numbers    ports.NumberGenerator
	resolver   services.FeeResolver
}

// NewCreateShipmentCommandHandler creates the handler. The fee resolver is
// built from the pricing repositories of each unit of work.
func NewCreateShipmentCommandHandler(
	uowFactory CreateShipmentUoWFactory,
	numbers ports.NumberGenerator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		resolver:   services.NewFeeResolver(),
	}
}

// Handle loads the zone, resolves the delivery fee and stores the shipment in
// the initial status. A tracking number collision is retried with a fresh
// number.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreatedShipment, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedShipment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedShipment{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry, err := loadRegistry(ctx, uow.StatusRepository())
	if err != nil {
		return CreatedShipment{}, err
	}
	initial, err := registry.Initial()
	if err != nil {
		return CreatedShipment{}, err
	}

	quote, err := h.quote(ctx, uow, cmd)
	if err != nil {
		return CreatedShipment{}, err
	}

	shipmentRepo := uow.ShipmentRepository()
	trackingNumber, err := uniqueNumber(ctx, "tracking number", h.numbers.NextTrackingNumber, shipmentRepo.ExistsByTrackingNumber)
	if err != nil {
		return CreatedShipment{}, err
	}

	s, err := shipment.NewShipment(shipment.NewParams{
		ID:             kernel.NewUUID(),
		TrackingNumber: trackingNumber,
		MerchantID:     cmd.MerchantID(),
		ZoneID:         cmd.ZoneID(),
		RecipientID:    cmd.RecipientID(),
		ItemValue:      cmd.ItemValue(),
		CODAmount:      cmd.CODAmount(),
		DeliveryFee:    quote.Fee,
		Priority:       cmd.Priority(),
		SourceType:     cmd.SourceType(),
		FeePaidBy:      cmd.FeePaidBy(),
		Initial:        initial,
		Now:            time.Now(),
	})
	if err != nil {
		return CreatedShipment{}, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return CreatedShipment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedShipment{}, err
	}

	return CreatedShipment{
		ID:             s.ID(),
		TrackingNumber: s.TrackingNumber(),
		DeliveryFee:    s.DeliveryFee(),
		FeeSource:      quote.Source,
	}, nil
}

func (h CreateShipmentCommandHandler) quote(ctx context.Context, uow CreateShipmentUoW, cmd CreateShipmentCommand) (services.FeeQuote, error) {
	pricingRepo := uow.PricingRepository()

	zone, err := pricingRepo.GetZone(ctx, cmd.ZoneID())
	if err != nil {
		return services.FeeQuote{}, err
	}

	override, err := pricingRepo.GetActiveOverride(ctx, cmd.MerchantID(), cmd.ZoneID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.FeeQuote{}, err
	}

	systemDefault, err := uow.SettingRepository().Get(ctx, pricing.SettingDefaultDeliveryFee)
	if err != nil {
		return services.FeeQuote{}, err
	}

	return h.resolver.Resolve(services.FeeInputs{
		Override:      override,
		Zone:          zone,
		SystemDefault: systemDefault,
		Priority:      cmd.Priority(),
	}), nil
}
