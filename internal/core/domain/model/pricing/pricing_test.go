package pricing_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := map[string]pricing.Priority{
		"EXPRESS":  pricing.Express,
		"express":  pricing.Express,
		"ECONOMY":  pricing.Economy,
		"STANDARD": pricing.Standard,
		"":         pricing.Standard,
		"URGENT":   pricing.Standard,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, pricing.ParsePriority(in))
		})
	}
}

func TestPriority_Multiplier(t *testing.T) {
	base := kernel.MustMoney("50.00")

	assert.Equal(t, "75.00", base.Mul(pricing.Express.Multiplier()).String())
	assert.Equal(t, "50.00", base.Mul(pricing.Standard.Multiplier()).String())
	assert.Equal(t, "40.00", base.Mul(pricing.Economy.Multiplier()).String())
}

func TestNewZone(t *testing.T) {
	t.Run("default fee is optional", func(t *testing.T) {
		z, err := pricing.NewZone(kernel.NewUUID(), "North", nil)

		require.NoError(t, err)
		assert.Nil(t, z.DefaultFee())
	})

	t.Run("should reject negative default fee", func(t *testing.T) {
		fee := kernel.MustMoney("-1")

		_, err := pricing.NewZone(kernel.NewUUID(), "North", &fee)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := pricing.NewZone(kernel.NewUUID(), "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMerchantZonePrice_Deactivate(t *testing.T) {
	p, err := pricing.NewMerchantZonePrice(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoney("75.00"), true)
	require.NoError(t, err)

	p.Deactivate()

	assert.False(t, p.IsActive())
	assert.Equal(t, "75.00", p.Fee().String())
}
