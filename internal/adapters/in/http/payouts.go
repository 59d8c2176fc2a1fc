package http

import (
	"net/http"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type createPayoutRequest struct {
	UserID      string    `json:"user_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

type createdPayoutResponse struct {
	ID        string `json:"id"`
	NetAmount string `json:"net_amount"`
	ItemCount int    `json:"item_count"`
}

type payoutStatusRequest struct {
	Status string `json:"status"`
}

type payoutItemResponse struct {
	SourceType  string `json:"source_type"`
	SourceID    string `json:"source_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type payoutResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	PeriodStart time.Time            `json:"period_start"`
	PeriodEnd   time.Time            `json:"period_end"`
	NetAmount   string               `json:"net_amount"`
	PaidAt      *time.Time           `json:"paid_at"`
	CreatedAt   *time.Time           `json:"created_at,omitempty"`
	Items       []payoutItemResponse `json:"items,omitempty"`
}

func toCreatedPayoutResponse(p commands.CreatedPayout) createdPayoutResponse {
	return createdPayoutResponse{ID: p.ID.String(), NetAmount: p.NetAmount.String(), ItemCount: p.ItemCount}
}

// CreateCourierPayout handles POST /api/v1/payouts/courier. 422 means nothing
// in the period was left to settle.
func (s *Server) CreateCourierPayout(ctx echo.Context) error {
	var req createPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	courierID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateCourierPayoutCommand(courierID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateCourierPayout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCreatedPayoutResponse(created))
}

// CreateMerchantPayout handles POST /api/v1/payouts/merchant.
func (s *Server) CreateMerchantPayout(ctx echo.Context) error {
	var req createPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	merchantID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateMerchantPayoutCommand(merchantID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateMerchantPayout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCreatedPayoutResponse(created))
}

// GetPayout handles GET /api/v1/payouts/:id.
func (s *Server) GetPayout(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetPayoutQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.GetPayout.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	createdAt := p.CreatedAt
	response := payoutResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Type:        p.Type,
		Status:      p.Status,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		NetAmount:   p.NetAmount.String(),
		PaidAt:      p.PaidAt,
		CreatedAt:   &createdAt,
		Items:       make([]payoutItemResponse, len(p.Items)),
	}
	for i, item := range p.Items {
		response.Items[i] = payoutItemResponse{
			SourceType:  item.SourceType,
			SourceID:    item.SourceID.String(),
			Amount:      item.Amount.String(),
			Description: item.Description,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdatePayoutStatus handles PATCH /api/v1/payouts/:id/status.
func (s *Server) UpdatePayoutStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req payoutStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePayoutStatusCommand(id, req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.UpdatePayoutStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, payoutResponse{
		ID:          p.ID().String(),
		UserID:      p.UserID().String(),
		Type:        p.Type().String(),
		Status:      p.Status().String(),
		PeriodStart: p.PeriodStart(),
		PeriodEnd:   p.PeriodEnd(),
		NetAmount:   p.NetAmount().String(),
		PaidAt:      p.PaidAt(),
	})
}
