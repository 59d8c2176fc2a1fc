package services_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneWithFee(t *testing.T, fee *string) *pricing.Zone {
	t.Helper()
	var m *kernel.Money
	if fee != nil {
		v := kernel.MustMoney(*fee)
		m = &v
	}
	z, err := pricing.NewZone(kernel.NewUUID(), "Center", m)
	require.NoError(t, err)
	return z
}

func ptr(s string) *string { return &s }

func TestFeeResolver_Resolve(t *testing.T) {
	resolver := services.NewFeeResolver()
	merchantID := kernel.NewUUID()

	override := func(t *testing.T, zone *pricing.Zone, active bool) *pricing.MerchantZonePrice {
		p, err := pricing.NewMerchantZonePrice(kernel.NewUUID(), merchantID, zone.ID(), kernel.MustMoney("75.00"), active)
		require.NoError(t, err)
		return p
	}

	t.Run("active override wins over every other tier", func(t *testing.T) {
		zone := zoneWithFee(t, ptr("50.00"))

		q := resolver.Resolve(services.FeeInputs{
			Override:      override(t, zone, true),
			Zone:          zone,
			SystemDefault: ptr("30.00"),
			Priority:      pricing.Express,
		})

		assert.Equal(t, "75.00", q.Fee.String())
		assert.Equal(t, services.FeeFromMerchantOverride, q.Source)
	})

	t.Run("inactive override falls through to zone default", func(t *testing.T) {
		zone := zoneWithFee(t, ptr("50.00"))

		q := resolver.Resolve(services.FeeInputs{Override: override(t, zone, false), Zone: zone})

		assert.Equal(t, "50.00", q.Fee.String())
		assert.Equal(t, services.FeeFromZoneDefault, q.Source)
	})

	t.Run("zone default is scaled by priority", func(t *testing.T) {
		zone := zoneWithFee(t, ptr("50.00"))

		assert.Equal(t, "75.00", resolver.Resolve(services.FeeInputs{Zone: zone, Priority: pricing.Express}).Fee.String())
		assert.Equal(t, "40.00", resolver.Resolve(services.FeeInputs{Zone: zone, Priority: pricing.Economy}).Fee.String())
		assert.Equal(t, "50.00", resolver.Resolve(services.FeeInputs{Zone: zone, Priority: pricing.ParsePriority("bogus")}).Fee.String())
	})

	t.Run("null zone default falls back to system setting", func(t *testing.T) {
		q := resolver.Resolve(services.FeeInputs{Zone: zoneWithFee(t, nil), SystemDefault: ptr("42.5"), Priority: pricing.Express})

		assert.Equal(t, "42.50", q.Fee.String())
		assert.Equal(t, services.FeeFromSystemSetting, q.Source)
	})

	t.Run("absent or malformed setting uses 50.00", func(t *testing.T) {
		for _, setting := range []*string{nil, ptr("fifty"), ptr(""), ptr("-5")} {
			q := resolver.Resolve(services.FeeInputs{Zone: zoneWithFee(t, nil), SystemDefault: setting})

			assert.Equal(t, "50.00", q.Fee.String())
			assert.Equal(t, services.FeeFromFallback, q.Source)
		}
	})
}
