package pricing

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var (
	ErrZoneIsNotConstructed          = errors.New("Zone must be created via NewZone constructor")
	ErrMerchantPriceIsNotConstructed = errors.New("MerchantZonePrice must be created via NewMerchantZonePrice constructor")
)

// SettingDefaultDeliveryFee is the settings key holding the system-wide fee.
const SettingDefaultDeliveryFee = "pricing.default_delivery_fee"

// FallbackDeliveryFee applies when the system setting is absent or malformed.
var FallbackDeliveryFee = kernel.MustMoney("50.00")

// Zone is a delivery area. DefaultFee is optional.
type Zone struct {
	id            kernel.UUID
	name          string
	defaultFee    *kernel.Money
	isConstructed bool
}

func NewZone(id kernel.UUID, name string, defaultFee *kernel.Money) (*Zone, error) {
	name = strings.TrimSpace(name)
	var nameErr, feeErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("zone name")
	}
	if defaultFee != nil && defaultFee.IsNegative() {
		feeErr = errs.NewValueIsInvalidError("zone default fee")
	}
	if err := errors.Join(id.Validate(), nameErr, feeErr); err != nil {
		return nil, err
	}
	return &Zone{id: id, name: name, defaultFee: defaultFee, isConstructed: true}, nil
}

func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

// DefaultFee returns nil when the zone has no default of its own.
func (z *Zone) DefaultFee() *kernel.Money {
	return z.defaultFee
}

// MerchantZonePrice overrides the fee a merchant pays in one zone.
type MerchantZonePrice struct {
	id            kernel.UUID
	merchantID    kernel.UUID
	zoneID        kernel.UUID
	fee           kernel.Money
	active        bool
	isConstructed bool
}

func NewMerchantZonePrice(id, merchantID, zoneID kernel.UUID, fee kernel.Money, active bool) (*MerchantZonePrice, error) {
	var feeErr error
	if fee.IsNegative() {
		feeErr = errs.NewValueIsInvalidError("merchant zone fee")
	}
	if err := errors.Join(id.Validate(), merchantID.Validate(), zoneID.Validate(), feeErr); err != nil {
		return nil, err
	}
	return &MerchantZonePrice{
		id:            id,
		merchantID:    merchantID,
		zoneID:        zoneID,
		fee:           fee,
		active:        active,
		isConstructed: true,
	}, nil
}

func (p *MerchantZonePrice) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrMerchantPriceIsNotConstructed
	}
	return nil
}

func (p *MerchantZonePrice) ID() kernel.UUID         { return p.id }
func (p *MerchantZonePrice) MerchantID() kernel.UUID { return p.merchantID }
func (p *MerchantZonePrice) ZoneID() kernel.UUID     { return p.zoneID }
func (p *MerchantZonePrice) Fee() kernel.Money       { return p.fee }
func (p *MerchantZonePrice) IsActive() bool          { return p.active }

func (p *MerchantZonePrice) Deactivate() {
	p.active = false
}
