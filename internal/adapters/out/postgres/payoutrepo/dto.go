package payoutrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        int             `gorm:"not null"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	NetAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      int             `gorm:"not null;index"`
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
	Items       []PayoutItemDTO `gorm:"foreignKey:PayoutID"`
}

func (PayoutDTO) TableName() string {
	return "payouts"
}

type PayoutItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayoutID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SourceType  string          `gorm:"size:32;not null"`
	SourceID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time
}

func (PayoutItemDTO) TableName() string {
	return "payout_items"
}

func fromDomain(p *payout.Payout) PayoutDTO {
	items := make([]PayoutItemDTO, 0, len(p.Items()))
	for _, item := range p.Items() {
		items = append(items, PayoutItemDTO{
			ID:          item.ID().Bytes(),
			PayoutID:    p.ID().Bytes(),
			SourceType:  item.SourceType(),
			SourceID:    item.SourceID().Bytes(),
			Amount:      item.Amount().Decimal(),
			Description: item.Description(),
			CreatedAt:   item.CreatedAt(),
		})
	}

	return PayoutDTO{
		ID:          p.ID().Bytes(),
		UserID:      p.UserID().Bytes(),
		Type:        int(p.Type()),
		PeriodStart: p.PeriodStart(),
		PeriodEnd:   p.PeriodEnd(),
		NetAmount:   p.NetAmount().Decimal(),
		Status:      int(p.Status()),
		PaidAt:      p.PaidAt(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		Items:       items,
	}
}

func toDomain(dto PayoutDTO) (*payout.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]payout.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		sourceID, itemErr := kernel.UUIDFromBytes(itemDTO.SourceID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, payout.RestoreItem(
			itemID, id, itemDTO.SourceType, sourceID, kernel.NewMoney(itemDTO.Amount), itemDTO.Description, itemDTO.CreatedAt.UTC()))
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		at := dto.PaidAt.UTC()
		paidAt = &at
	}

	return payout.RestorePayout(payout.RestoreParams{
		ID:          id,
		UserID:      userID,
		Type:        payout.Type(dto.Type),
		PeriodStart: dto.PeriodStart.UTC(),
		PeriodEnd:   dto.PeriodEnd.UTC(),
		NetAmount:   kernel.NewMoney(dto.NetAmount),
		Status:      payout.Status(dto.Status),
		Items:       items,
		PaidAt:      paidAt,
		CreatedAt:   dto.CreatedAt.UTC(),
		UpdatedAt:   dto.UpdatedAt.UTC(),
	})
}
