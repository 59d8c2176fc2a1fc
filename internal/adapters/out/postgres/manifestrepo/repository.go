package manifestrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormManifestRepository struct {
	db *gorm.DB
}

func NewGormManifestRepository(db *gorm.DB) *GormManifestRepository {
	return &GormManifestRepository{db: db}
}

func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("manifest number", err)
		}
		return err
	}
	return nil
}

func (r *GormManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ManifestDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "updated_at": dto.UpdatedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("manifest", aggregate.ID().String())
	}
	return nil
}

func (r *GormManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManifestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormManifestRepository) GetOpenForCourier(ctx context.Context, courierID kernel.UUID) (*manifest.Manifest, error) {
	var dto ManifestDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status = ?", courierID.Bytes(), int(manifest.Created)).
		Order("created_at ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open manifest for courier", courierID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormManifestRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ManifestDTO{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
