package manifestrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

type ManifestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"size:32;not null;uniqueIndex"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index:idx_manifests_courier_status,priority:1"`
	Status    int       `gorm:"not null;index:idx_manifests_courier_status,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (ManifestDTO) TableName() string {
	return "manifests"
}

func fromDomain(m *manifest.Manifest) ManifestDTO {
	return ManifestDTO{
		ID:        m.ID().Bytes(),
		Number:    m.Number(),
		CourierID: m.CourierID().Bytes(),
		Status:    int(m.Status()),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	return manifest.RestoreManifest(id, dto.Number, courierID, manifest.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}
