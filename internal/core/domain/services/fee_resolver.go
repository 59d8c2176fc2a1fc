package services

import (
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// FeeSource names the tier a fee was resolved from.
type FeeSource string

const (
	FeeFromMerchantOverride FeeSource = "merchant_override"
	FeeFromZoneDefault      FeeSource = "zone_default"
	FeeFromSystemSetting    FeeSource = "system_setting"
	FeeFromFallback         FeeSource = "fallback"
)

// FeeInputs are the pricing facts loaded for one shipment. Override, Zone and
// SystemDefault may be nil.
type FeeInputs struct {
	Override      *pricing.MerchantZonePrice
	Zone          *pricing.Zone
	SystemDefault *string
	Priority      pricing.Priority
}

type FeeQuote struct {
	Fee    kernel.Money
	Source FeeSource
}

// FeeResolver picks the first applicable tier: an active merchant+zone
// override, the zone default (scaled by priority), the system setting, and
// finally pricing.FallbackDeliveryFee.
type FeeResolver struct{}

func NewFeeResolver() FeeResolver {
	return FeeResolver{}
}

func (FeeResolver) Resolve(in FeeInputs) FeeQuote {
	if in.Override != nil && in.Override.IsActive() {
		return FeeQuote{Fee: in.Override.Fee(), Source: FeeFromMerchantOverride}
	}

	if in.Zone != nil && in.Zone.DefaultFee() != nil {
		fee := in.Zone.DefaultFee().Mul(in.Priority.Multiplier())
		return FeeQuote{Fee: fee, Source: FeeFromZoneDefault}
	}

	if in.SystemDefault != nil {
		if d, err := decimal.NewFromString(strings.TrimSpace(*in.SystemDefault)); err == nil && !d.IsNegative() {
			return FeeQuote{Fee: kernel.NewMoney(d), Source: FeeFromSystemSetting}
		}
	}

	return FeeQuote{Fee: pricing.FallbackDeliveryFee, Source: FeeFromFallback}
}
