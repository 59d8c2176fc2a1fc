package commands

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
)

// CreateZoneCommandHandler registers a delivery zone with an optional default fee.
type CreateZoneCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewCreateZoneCommandHandler(uowFactory PricingUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{uowFactory: uowFactory}
}

// Handle stores the zone under a new id.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (*pricing.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	zone, err := pricing.NewZone(kernel.NewUUID(), cmd.Name(), cmd.DefaultFee())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PricingRepository().AddZone(ctx, zone); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return zone, nil
}

// SetMerchantZonePriceCommandHandler adds a merchant specific fee for a zone.
// Older overrides stay stored; the newest active one wins.
type SetMerchantZonePriceCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewSetMerchantZonePriceCommandHandler(uowFactory PricingUoWFactory) SetMerchantZonePriceCommandHandler {
	return SetMerchantZonePriceCommandHandler{uowFactory: uowFactory}
}

// Handle requires the zone to exist.
func (h SetMerchantZonePriceCommandHandler) Handle(ctx context.Context, cmd SetMerchantZonePriceCommand) (*pricing.MerchantZonePrice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PricingRepository()
	if _, err := repo.GetZone(ctx, cmd.ZoneID()); err != nil {
		return nil, err
	}

	price, err := pricing.NewMerchantZonePrice(kernel.NewUUID(), cmd.MerchantID(), cmd.ZoneID(), cmd.Fee(), true)
	if err != nil {
		return nil, err
	}
	if err = repo.AddOverride(ctx, price); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return price, nil
}

// SetDefaultDeliveryFeeCommandHandler changes the system fallback fee.
type SetDefaultDeliveryFeeCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewSetDefaultDeliveryFeeCommandHandler(uowFactory PricingUoWFactory) SetDefaultDeliveryFeeCommandHandler {
	return SetDefaultDeliveryFeeCommandHandler{uowFactory: uowFactory}
}

// Handle upserts the setting read by the fee resolver.
func (h SetDefaultDeliveryFeeCommandHandler) Handle(ctx context.Context, cmd SetDefaultDeliveryFeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingRepository().Set(ctx, pricing.SettingDefaultDeliveryFee, cmd.Fee().String()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
