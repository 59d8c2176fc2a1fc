package settingrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingDTO struct {
	Key       string `gorm:"size:128;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SettingDTO) TableName() string {
	return "settings"
}

type GormSettingRepository struct {
	db *gorm.DB
}

func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get returns nil, nil when the key is absent.
func (r *GormSettingRepository) Get(ctx context.Context, key string) (*string, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.Value, nil
}

func (r *GormSettingRepository) Set(ctx context.Context, key, value string) error {
	dto := SettingDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}
