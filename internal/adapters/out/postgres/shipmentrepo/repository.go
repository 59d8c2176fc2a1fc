package shipmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment row and its pending history.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("tracking number", err)
		}
		return err
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the row only if nobody else changed it since it was read,
// then appends the pending history.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Omit(clause.Associations).
		Select("*").
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, "id = ?", dto.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("shipment",
			fmt.Errorf("%s changed since version %d", aggregate.TrackingNumber(), aggregate.Version()))
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	aggregate.VersionPersisted(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).Preload("Status").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).Preload("Status").First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking number", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	return r.exists(ctx, "tracking_number = ?", trackingNumber)
}

func (r *GormShipmentRepository) FindCourierSettleable(
	ctx context.Context,
	courierID kernel.UUID,
	from, to time.Time,
) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.deliveredBetween(ctx, from, to).
		Preload("Status").
		Where("shipments.courier_id = ?", courierID.Bytes()).
		Where("shipments.cash_reconciled = ?", false).
		Where("shipments.courier_payout_id IS NULL").
		Order("shipments.delivered_at ASC, shipments.tracking_number ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormShipmentRepository) FindMerchantSettleable(
	ctx context.Context,
	merchantID kernel.UUID,
	from, to time.Time,
) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.deliveredBetween(ctx, from, to).
		Preload("Status").
		Where("shipments.merchant_id = ?", merchantID.Bytes()).
		Where("shipments.merchant_payout_id IS NULL").
		Order("shipments.delivered_at ASC, shipments.tracking_number ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormShipmentRepository) CouriersWithSettleable(ctx context.Context, from, to time.Time) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.deliveredBetween(ctx, from, to).
		Where("shipments.courier_id IS NOT NULL").
		Where("shipments.cash_reconciled = ?", false).
		Where("shipments.courier_payout_id IS NULL").
		Distinct().
		Pluck("shipments.courier_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, v := range raw {
		id, idErr := kernel.UUIDFromBytes(v[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// History returns the ledger of a shipment oldest first.
func (r *GormShipmentRepository) History(ctx context.Context, shipmentID kernel.UUID) ([]shipment.HistoryEntry, error) {
	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at ASC, seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]shipment.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, mapErr := historyToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *GormShipmentRepository) deliveredBetween(ctx context.Context, from, to time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Joins("JOIN statuses ON statuses.id = shipments.status_id").
		Where("statuses.name = ?", status.Delivered.String()).
		Where("shipments.delivered_at >= ? AND shipments.delivered_at < ?", from.UTC(), to.UTC())
}

func (r *GormShipmentRepository) appendHistory(ctx context.Context, aggregate *shipment.Shipment) error {
	pending := aggregate.PullHistory()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]HistoryDTO, 0, len(pending))
	for _, h := range pending {
		dtos = append(dtos, historyFromDomain(h))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormShipmentRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainList(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}

type GormReturnLinkRepository struct {
	db *gorm.DB
}

func NewGormReturnLinkRepository(db *gorm.DB) *GormReturnLinkRepository {
	return &GormReturnLinkRepository{db: db}
}

func (r *GormReturnLinkRepository) Add(ctx context.Context, link *shipment.ReturnLink) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := returnLinkFromDomain(link)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormReturnLinkRepository) GetByOriginal(ctx context.Context, originalID kernel.UUID) ([]*shipment.ReturnLink, error) {
	var dtos []ReturnLinkDTO
	err := r.db.WithContext(ctx).
		Where("original_shipment_id = ?", originalID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	links := make([]*shipment.ReturnLink, 0, len(dtos))
	for _, dto := range dtos {
		l, mapErr := returnLinkToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		links = append(links, l)
	}
	return links, nil
}
