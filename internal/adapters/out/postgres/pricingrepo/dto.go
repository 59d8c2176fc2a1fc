package pricingrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ZoneDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name       string           `gorm:"size:128;not null"`
	DefaultFee *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time
}

func (ZoneDTO) TableName() string {
	return "zones"
}

type MerchantZonePriceDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;not null;index:idx_merchant_zone_prices_lookup,priority:1"`
	ZoneID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_merchant_zone_prices_lookup,priority:2"`
	Fee        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Active     bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

func (MerchantZonePriceDTO) TableName() string {
	return "merchant_zone_prices"
}

func zoneFromDomain(z *pricing.Zone) ZoneDTO {
	dto := ZoneDTO{ID: z.ID().Bytes(), Name: z.Name()}
	if fee := z.DefaultFee(); fee != nil {
		d := fee.Decimal()
		dto.DefaultFee = &d
	}
	return dto
}

func zoneToDomain(dto ZoneDTO) (*pricing.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	var fee *kernel.Money
	if dto.DefaultFee != nil {
		m := kernel.NewMoney(*dto.DefaultFee)
		fee = &m
	}
	return pricing.NewZone(id, dto.Name, fee)
}

func overrideFromDomain(p *pricing.MerchantZonePrice) MerchantZonePriceDTO {
	return MerchantZonePriceDTO{
		ID:         p.ID().Bytes(),
		MerchantID: p.MerchantID().Bytes(),
		ZoneID:     p.ZoneID().Bytes(),
		Fee:        p.Fee().Decimal(),
		Active:     p.IsActive(),
	}
}

func overrideToDomain(dto MerchantZonePriceDTO) (*pricing.MerchantZonePrice, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.ID, dto.MerchantID, dto.ZoneID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return pricing.NewMerchantZonePrice(ids[0], ids[1], ids[2], kernel.NewMoney(dto.Fee), dto.Active)
}
