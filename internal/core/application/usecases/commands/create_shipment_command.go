package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a new shipment for a merchant. The delivery
// fee is not an input: it is resolved once from the pricing tables.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(merchantID, zoneID, recipientID,
//	    kernel.MustMoney("120.00"), kernel.MustMoney("170.00"),
//	    pricing.Express, shipment.SourceMerchant, shipment.PaidByRecipient)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct {
	merchantID  kernel.UUID
	zoneID      kernel.UUID
	recipientID kernel.UUID
	itemValue   kernel.Money
	codAmount   kernel.Money
	priority    pricing.Priority
	sourceType  shipment.SourceType
	feePaidBy   shipment.FeePayer

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	merchantID, zoneID, recipientID kernel.UUID,
	itemValue, codAmount kernel.Money,
	priority pricing.Priority,
	sourceType shipment.SourceType,
	feePaidBy shipment.FeePayer,
) (CreateShipmentCommand, error) {
	var amountErr error
	if itemValue.IsNegative() {
		amountErr = errors.Join(amountErr, errs.NewValueIsInvalidError("item value"))
	}
	if codAmount.IsNegative() {
		amountErr = errors.Join(amountErr, errs.NewValueIsInvalidError("cod amount"))
	}
	if err := errors.Join(
		merchantID.Validate(),
		zoneID.Validate(),
		recipientID.Validate(),
		sourceType.Validate(),
		feePaidBy.Validate(),
		amountErr,
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		merchantID:  merchantID,
		zoneID:      zoneID,
		recipientID: recipientID,
		itemValue:   itemValue,
		codAmount:   codAmount,
		priority:    priority,
		sourceType:  sourceType,
		feePaidBy:   feePaidBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) MerchantID() kernel.UUID         { return c.merchantID }
func (c CreateShipmentCommand) ZoneID() kernel.UUID             { return c.zoneID }
func (c CreateShipmentCommand) RecipientID() kernel.UUID        { return c.recipientID }
func (c CreateShipmentCommand) ItemValue() kernel.Money         { return c.itemValue }
func (c CreateShipmentCommand) CODAmount() kernel.Money         { return c.codAmount }
func (c CreateShipmentCommand) Priority() pricing.Priority      { return c.priority }
func (c CreateShipmentCommand) SourceType() shipment.SourceType { return c.sourceType }
func (c CreateShipmentCommand) FeePaidBy() shipment.FeePayer    { return c.feePaidBy }
