package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"courierhub/internal/core/domain/model/event"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OutboxDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EventName   string            `gorm:"size:64;not null;index"`
	AggregateID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Payload     datatypes.JSONMap `gorm:"not null"`
	OccurredAt  time.Time         `gorm:"not null;index"`
	PublishedAt *time.Time        `gorm:"index"`
	CreatedAt   time.Time
}

func (OutboxDTO) TableName() string {
	return "outbox_messages"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append stores events in the current transaction.
func (r *GormOutboxRepository) Append(ctx context.Context, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, OutboxDTO{
			ID:          e.ID().Bytes(),
			EventName:   e.Name(),
			AggregateID: e.AggregateID().Bytes(),
			Payload:     datatypes.JSONMap(e.Payload()),
			OccurredAt:  e.OccurredAt(),
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at ASC, created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		aggregateID, idErr := kernel.UUIDFromBytes(dto.AggregateID[:])
		if idErr != nil {
			return nil, idErr
		}
		payload, marshalErr := json.Marshal(dto.Payload)
		if marshalErr != nil {
			return nil, marshalErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			EventName:   dto.EventName,
			AggregateID: aggregateID,
			Payload:     payload,
			OccurredAt:  dto.OccurredAt.UTC(),
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Update("published_at", at.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("unpublished outbox message", id.String())
	}
	return nil
}
