package queries

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown tracking number.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) (GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}

	var head struct {
		ID             uuid.UUID
		TrackingNumber string
		StatusName     string
		DeliveryFee    decimal.Decimal
		CODAmount      decimal.Decimal `gorm:"column:cod_amount"`
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			st.name AS status_name,
			s.delivery_fee,
			s.cod_amount
		FROM shipments s
		JOIN statuses st ON st.id = s.status_id
		WHERE s.tracking_number = ?
	`, query.TrackingNumber()).Scan(&head)
	if result.Error != nil {
		return GetShipmentHistoryQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetShipmentHistoryQueryResponse{}, errs.NewObjectNotFoundError("tracking number", query.TrackingNumber())
	}

	shipmentID, err := kernel.UUIDFromBytes(head.ID[:])
	if err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status_name,
			note,
			created_at
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY created_at, seq
	`, head.ID).Rows()
	if err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var entry HistoryEntryResponse
		if err = rows.Scan(&entry.Status, &entry.Note, &entry.CreatedAt); err != nil {
			return GetShipmentHistoryQueryResponse{}, err
		}
		entry.CreatedAt = entry.CreatedAt.UTC()
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}

	return GetShipmentHistoryQueryResponse{
		ShipmentID:     shipmentID,
		TrackingNumber: head.TrackingNumber,
		Status:         head.StatusName,
		DeliveryFee:    kernel.NewMoney(head.DeliveryFee),
		CODAmount:      kernel.NewMoney(head.CODAmount),
		Entries:        entries,
	}, nil
}
