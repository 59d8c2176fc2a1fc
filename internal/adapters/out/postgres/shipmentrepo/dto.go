package shipmentrepo

import (
	"time"

	"courierhub/internal/adapters/out/postgres/statusrepo"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentDTO struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string               `gorm:"size:32;not null;uniqueIndex"`
	MerchantID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	ZoneID           uuid.UUID            `gorm:"type:uuid;not null"`
	RecipientID      uuid.UUID            `gorm:"type:uuid;not null"`
	StatusID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	Status           statusrepo.StatusDTO `gorm:"foreignKey:StatusID"`
	ManifestID       *uuid.UUID           `gorm:"type:uuid;index"`
	CourierID        *uuid.UUID           `gorm:"type:uuid;index"`
	CourierPayoutID  *uuid.UUID           `gorm:"type:uuid;index"`
	MerchantPayoutID *uuid.UUID           `gorm:"type:uuid;index"`
	ItemValue        decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	CODAmount        decimal.Decimal      `gorm:"column:cod_amount;type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Priority         int                  `gorm:"not null"`
	SourceType       int                  `gorm:"not null"`
	FeePaidBy        int                  `gorm:"not null"`
	CashReconciled   bool                 `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time  `gorm:"autoUpdateTime:false"`
	DeliveredAt      *time.Time `gorm:"index"`
	Version          int        `gorm:"not null;default:0"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// HistoryDTO is append-only. Seq orders rows written within the same instant.
type HistoryDTO struct {
	Seq        uint64    `gorm:"primaryKey;autoIncrement"`
	EntryID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	StatusID   uuid.UUID `gorm:"type:uuid;not null"`
	StatusName string    `gorm:"size:64;not null"`
	Note       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (HistoryDTO) TableName() string {
	return "shipment_status_history"
}

type ReturnLinkDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReturnShipmentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Reason             string    `gorm:"type:text;not null"`
	CreatedAt          time.Time
}

func (ReturnLinkDTO) TableName() string {
	return "return_links"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               s.ID().Bytes(),
		TrackingNumber:   s.TrackingNumber(),
		MerchantID:       s.MerchantID().Bytes(),
		ZoneID:           s.ZoneID().Bytes(),
		RecipientID:      s.RecipientID().Bytes(),
		StatusID:         s.Status().ID().Bytes(),
		ManifestID:       optionalID(s.ManifestID()),
		CourierID:        optionalID(s.CourierID()),
		CourierPayoutID:  optionalID(s.CourierPayoutID()),
		MerchantPayoutID: optionalID(s.MerchantPayoutID()),
		ItemValue:        s.ItemValue().Decimal(),
		CODAmount:        s.CODAmount().Decimal(),
		DeliveryFee:      s.DeliveryFee().Decimal(),
		Priority:         int(s.Priority()),
		SourceType:       int(s.SourceType()),
		FeePaidBy:        int(s.FeePaidBy()),
		CashReconciled:   s.IsCashReconciled(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
		DeliveredAt:      s.DeliveredAt(),
		Version:          s.Version(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.MerchantID, dto.ZoneID, dto.RecipientID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	current, err := statusrepo.ToDomain(dto.Status)
	if err != nil {
		return nil, err
	}

	p := shipment.RestoreParams{
		NewParams: shipment.NewParams{
			ID:             ids[0],
			TrackingNumber: dto.TrackingNumber,
			MerchantID:     ids[1],
			ZoneID:         ids[2],
			RecipientID:    ids[3],
			ItemValue:      kernel.NewMoney(dto.ItemValue),
			CODAmount:      kernel.NewMoney(dto.CODAmount),
			DeliveryFee:    kernel.NewMoney(dto.DeliveryFee),
			Priority:       pricing.Priority(dto.Priority),
			SourceType:     shipment.SourceType(dto.SourceType),
			FeePaidBy:      shipment.FeePayer(dto.FeePaidBy),
			Initial:        current,
		},
		CashReconciled: dto.CashReconciled,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
		Version:        dto.Version,
	}
	if dto.DeliveredAt != nil {
		at := dto.DeliveredAt.UTC()
		p.DeliveredAt = &at
	}
	if p.ManifestID, err = restoreOptionalID(dto.ManifestID); err != nil {
		return nil, err
	}
	if p.CourierID, err = restoreOptionalID(dto.CourierID); err != nil {
		return nil, err
	}
	if p.CourierPayoutID, err = restoreOptionalID(dto.CourierPayoutID); err != nil {
		return nil, err
	}
	if p.MerchantPayoutID, err = restoreOptionalID(dto.MerchantPayoutID); err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(p)
}

func historyFromDomain(h shipment.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		EntryID:    h.ID().Bytes(),
		ShipmentID: h.ShipmentID().Bytes(),
		StatusID:   h.StatusID().Bytes(),
		StatusName: h.StatusName().String(),
		Note:       h.Note(),
		CreatedAt:  h.CreatedAt(),
	}
}

func historyToDomain(dto HistoryDTO) (shipment.HistoryEntry, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.EntryID, dto.ShipmentID, dto.StatusID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return shipment.HistoryEntry{}, err
		}
		ids = append(ids, id)
	}
	return shipment.RestoreHistoryEntry(ids[0], ids[1], ids[2], status.Name(dto.StatusName), dto.Note, dto.CreatedAt.UTC()), nil
}

func returnLinkFromDomain(l *shipment.ReturnLink) ReturnLinkDTO {
	return ReturnLinkDTO{
		ID:                 l.ID().Bytes(),
		OriginalShipmentID: l.OriginalID().Bytes(),
		ReturnShipmentID:   l.ReturnID().Bytes(),
		Reason:             l.Reason(),
		CreatedAt:          l.CreatedAt(),
	}
}

func returnLinkToDomain(dto ReturnLinkDTO) (*shipment.ReturnLink, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.ID, dto.OriginalShipmentID, dto.ReturnShipmentID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return shipment.RestoreReturnLink(ids[0], ids[1], ids[2], dto.Reason, dto.CreatedAt.UTC())
}
