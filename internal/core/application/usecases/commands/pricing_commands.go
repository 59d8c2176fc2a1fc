package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrSetMerchantZonePriceCommandIsNotConstructed = errors.New(
		"SetMerchantZonePriceCommand must be created via NewSetMerchantZonePriceCommand constructor",
	)
	ErrSetDefaultDeliveryFeeCommandIsNotConstructed = errors.New(
		"SetDefaultDeliveryFeeCommand must be created via NewSetDefaultDeliveryFeeCommand constructor",
	)
)

// CreateZoneCommand adds a delivery zone. DefaultFee may be nil.
type CreateZoneCommand struct {
	name       string
	defaultFee *kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(name string, defaultFee *kernel.Money) (CreateZoneCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateZoneCommand{}, errs.NewValueIsRequiredError("zone name")
	}
	if defaultFee != nil && defaultFee.IsNegative() {
		return CreateZoneCommand{}, errs.NewValueIsInvalidError("zone default fee")
	}
	return CreateZoneCommand{name: name, defaultFee: defaultFee, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) Name() string              { return c.name }
func (c CreateZoneCommand) DefaultFee() *kernel.Money { return c.defaultFee }

// SetMerchantZonePriceCommand adds an active merchant price for a zone. The
// newest active price wins.
type SetMerchantZonePriceCommand struct {
	merchantID kernel.UUID
	zoneID     kernel.UUID
	fee        kernel.Money

	guard guard.ConstructorGuard
}

func NewSetMerchantZonePriceCommand(merchantID, zoneID kernel.UUID, fee kernel.Money) (SetMerchantZonePriceCommand, error) {
	var feeErr error
	if fee.IsNegative() {
		feeErr = errs.NewValueIsInvalidError("merchant zone fee")
	}
	if err := errors.Join(merchantID.Validate(), zoneID.Validate(), feeErr); err != nil {
		return SetMerchantZonePriceCommand{}, err
	}
	return SetMerchantZonePriceCommand{merchantID: merchantID, zoneID: zoneID, fee: fee, guard: guard.NewConstructorGuard()}, nil
}

func (c SetMerchantZonePriceCommand) Validate() error {
	return c.guard.Validate(ErrSetMerchantZonePriceCommandIsNotConstructed)
}

func (c SetMerchantZonePriceCommand) MerchantID() kernel.UUID { return c.merchantID }
func (c SetMerchantZonePriceCommand) ZoneID() kernel.UUID     { return c.zoneID }
func (c SetMerchantZonePriceCommand) Fee() kernel.Money       { return c.fee }

// SetDefaultDeliveryFeeCommand writes the system-wide fee setting.
type SetDefaultDeliveryFeeCommand struct {
	fee kernel.Money

	guard guard.ConstructorGuard
}

func NewSetDefaultDeliveryFeeCommand(fee kernel.Money) (SetDefaultDeliveryFeeCommand, error) {
	if fee.IsNegative() {
		return SetDefaultDeliveryFeeCommand{}, errs.NewValueIsInvalidError("default delivery fee")
	}
	return SetDefaultDeliveryFeeCommand{fee: fee, guard: guard.NewConstructorGuard()}, nil
}

func (c SetDefaultDeliveryFeeCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultDeliveryFeeCommandIsNotConstructed)
}

func (c SetDefaultDeliveryFeeCommand) Fee() kernel.Money { return c.fee }
