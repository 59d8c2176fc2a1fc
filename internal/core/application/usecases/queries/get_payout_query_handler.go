package queries

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPayoutQueryHandler struct {
	db *gorm.DB
}

func NewGetPayoutQueryHandler(db *gorm.DB) GetPayoutQueryHandler {
	return GetPayoutQueryHandler{db: db}
}

type payoutRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        int
	Status      int
	PeriodStart time.Time
	PeriodEnd   time.Time
	NetAmount   decimal.Decimal
	PaidAt      *time.Time
	CreatedAt   time.Time
}

type payoutItemRow struct {
	SourceType  string
	SourceID    uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// Handle returns items in insertion order.
func (h GetPayoutQueryHandler) Handle(ctx context.Context, query GetPayoutQuery) (GetPayoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPayoutQueryResponse{}, err
	}

	var head payoutRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			type,
			status,
			period_start,
			period_end,
			net_amount,
			paid_at,
			created_at
		FROM payouts
		WHERE id = ?
	`, query.PayoutID().Bytes()).Scan(&head)
	if result.Error != nil {
		return GetPayoutQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetPayoutQueryResponse{}, errs.NewObjectNotFoundError("payout", query.PayoutID().String())
	}

	var items []payoutItemRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			source_type,
			source_id,
			amount,
			description
		FROM payout_items
		WHERE payout_id = ?
		ORDER BY created_at, id
	`, head.ID).Scan(&items).Error
	if err != nil {
		return GetPayoutQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(head.UserID[:])
	if err != nil {
		return GetPayoutQueryResponse{}, err
	}

	response := GetPayoutQueryResponse{
		ID:          query.PayoutID(),
		UserID:      userID,
		Type:        payout.Type(head.Type).String(),
		Status:      payout.Status(head.Status).String(),
		PeriodStart: head.PeriodStart.UTC(),
		PeriodEnd:   head.PeriodEnd.UTC(),
		NetAmount:   kernel.NewMoney(head.NetAmount),
		PaidAt:      head.PaidAt,
		CreatedAt:   head.CreatedAt.UTC(),
		Items:       make([]PayoutItemResponse, 0, len(items)),
	}
	for _, item := range items {
		sourceID, idErr := kernel.UUIDFromBytes(item.SourceID[:])
		if idErr != nil {
			return GetPayoutQueryResponse{}, idErr
		}
		response.Items = append(response.Items, PayoutItemResponse{
			SourceType:  item.SourceType,
			SourceID:    sourceID,
			Amount:      kernel.NewMoney(item.Amount),
			Description: item.Description,
		})
	}
	return response, nil
}
