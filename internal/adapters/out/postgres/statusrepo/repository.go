package statusrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

func (r *GormStatusRepository) Add(ctx context.Context, s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := FromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("status name", err)
		}
		return err
	}
	return nil
}

func (r *GormStatusRepository) Update(ctx context.Context, s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := FromDomain(s)
	result := r.db.WithContext(ctx).Model(&StatusDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "position": dto.Position})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("status name", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", s.ID().String())
	}
	return nil
}

func (r *GormStatusRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", id.String())
	}
	return nil
}

func (r *GormStatusRepository) Get(ctx context.Context, id kernel.UUID) (status.Status, error) {
	if err := id.Validate(); err != nil {
		return status.Status{}, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Status{}, errs.NewObjectNotFoundError("status", id.String())
		}
		return status.Status{}, err
	}
	return ToDomain(dto)
}

func (r *GormStatusRepository) GetByName(ctx context.Context, name status.Name) (status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Status{}, errs.NewObjectNotFoundError("status", name)
		}
		return status.Status{}, err
	}
	return ToDomain(dto)
}

func (r *GormStatusRepository) All(ctx context.Context) ([]status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]status.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func (r *GormStatusRepository) IsInUse(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("shipments").Where("status_id = ?", id.Bytes()).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
