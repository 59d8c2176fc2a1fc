package pricingrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPricingRepository struct {
	db *gorm.DB
}

func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

func (r *GormPricingRepository) AddZone(ctx context.Context, zone *pricing.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	dto := zoneFromDomain(zone)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormPricingRepository) GetZone(ctx context.Context, id kernel.UUID) (*pricing.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}
	return zoneToDomain(dto)
}

func (r *GormPricingRepository) AddOverride(ctx context.Context, price *pricing.MerchantZonePrice) error {
	if err := price.Validate(); err != nil {
		return err
	}
	dto := overrideFromDomain(price)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetActiveOverride prefers the most recently created active price.
func (r *GormPricingRepository) GetActiveOverride(ctx context.Context, merchantID, zoneID kernel.UUID) (*pricing.MerchantZonePrice, error) {
	var dto MerchantZonePriceDTO
	err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND zone_id = ? AND active = ?", merchantID.Bytes(), zoneID.Bytes(), true).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant zone price", merchantID.String()+"/"+zoneID.String())
		}
		return nil, err
	}
	return overrideToDomain(dto)
}
