package statusrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"

	"github.com/google/uuid"
)

type StatusDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:64;not null;uniqueIndex"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StatusDTO) TableName() string {
	return "statuses"
}

func FromDomain(s status.Status) StatusDTO {
	return StatusDTO{
		ID:       s.ID().Bytes(),
		Name:     s.Name().String(),
		Position: s.Position(),
	}
}

// ToDomain is exported for repositories that preload a shipment's status.
func ToDomain(dto StatusDTO) (status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return status.Status{}, err
	}
	return status.NewStatus(id, status.Name(dto.Name), dto.Position)
}
