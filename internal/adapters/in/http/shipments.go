package http

import (
	"net/http"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

type createShipmentRequest struct {
	MerchantID  string `json:"merchant_id"`
	ZoneID      string `json:"zone_id"`
	RecipientID string `json:"recipient_id"`
	ItemValue   string `json:"item_value"`
	CODAmount   string `json:"cod_amount"`
	Priority    string `json:"priority"`
	SourceType  string `json:"source_type"`
	FeePaidBy   string `json:"fee_paid_by"`
}

type createShipmentResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	DeliveryFee    string `json:"delivery_fee"`
	FeeSource      string `json:"fee_source"`
}

type shipmentResponse struct {
	ID             string     `json:"id"`
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	CourierID      *string    `json:"courier_id"`
	ManifestID     *string    `json:"manifest_id"`
	DeliveryFee    string     `json:"delivery_fee"`
	CODAmount      string     `json:"cod_amount"`
	CashReconciled bool       `json:"cash_reconciled"`
	DeliveredAt    *time.Time `json:"delivered_at"`
	Version        int        `json:"version"`
}

func toShipmentResponse(s *shipment.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:             s.ID().String(),
		TrackingNumber: s.TrackingNumber(),
		Status:         s.Status().Name().String(),
		CourierID:      uuidPtrString(s.CourierID()),
		ManifestID:     uuidPtrString(s.ManifestID()),
		DeliveryFee:    s.DeliveryFee().String(),
		CODAmount:      s.CODAmount().String(),
		CashReconciled: s.IsCashReconciled(),
		DeliveredAt:    s.DeliveredAt(),
		Version:        s.Version(),
	}
}

type advanceShipmentRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type historyEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResponse struct {
	ShipmentID     string         `json:"shipment_id"`
	TrackingNumber string         `json:"tracking_number"`
	Status         string         `json:"status"`
	DeliveryFee    string         `json:"delivery_fee"`
	CODAmount      string         `json:"cod_amount"`
	History        []historyEntry `json:"history"`
}

// CreateShipment handles POST /api/v1/shipments. Source type defaults to
// MERCHANT and the fee payer to MERCHANT.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newCreateShipmentCommand(req)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createShipmentResponse{
		ID:             created.ID.String(),
		TrackingNumber: created.TrackingNumber,
		DeliveryFee:    created.DeliveryFee.String(),
		FeeSource:      string(created.FeeSource),
	})
}

func newCreateShipmentCommand(req createShipmentRequest) (commands.CreateShipmentCommand, error) {
	merchantID, err := parseUUID("merchant_id", req.MerchantID)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	zoneID, err := parseUUID("zone_id", req.ZoneID)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	recipientID, err := parseUUID("recipient_id", req.RecipientID)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	itemValue, err := parseMoney(req.ItemValue)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	codAmount, err := parseMoney(req.CODAmount)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	sourceType := shipment.SourceMerchant
	if req.SourceType != "" {
		if sourceType, err = shipment.ParseSourceType(req.SourceType); err != nil {
			return commands.CreateShipmentCommand{}, err
		}
	}
	feePaidBy := shipment.PaidByMerchant
	if req.FeePaidBy != "" {
		if feePaidBy, err = shipment.ParseFeePayer(req.FeePaidBy); err != nil {
			return commands.CreateShipmentCommand{}, err
		}
	}

	return commands.NewCreateShipmentCommand(
		merchantID, zoneID, recipientID,
		itemValue, codAmount,
		pricing.ParsePriority(req.Priority),
		sourceType, feePaidBy,
	)
}

// AdvanceShipment handles POST /api/v1/shipments/:id/status.
func (s *Server) AdvanceShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req advanceShipmentRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceShipmentCommand(id, req.Status, req.Note)
	if err != nil {
		return s.fail(ctx, err)
	}
	updated, err := s.h.AdvanceShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// ReportFailedAttempt handles POST /api/v1/shipments/:id/failed-attempts.
func (s *Server) ReportFailedAttempt(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req reasonRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportFailedAttemptCommand(id, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}
	updated, err := s.h.ReportFailedAttempt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// CreateReturn handles POST /api/v1/shipments/:id/returns.
func (s *Server) CreateReturn(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req reasonRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateReturnCommand(id, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{
		"original_id":            created.OriginalID.String(),
		"return_id":              created.ReturnID.String(),
		"return_tracking_number": created.ReturnTrackingNumber,
	})
}

// GetShipmentHistory handles GET /api/v1/tracking/:trackingNumber/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	query, err := queries.NewGetShipmentHistoryQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return s.fail(ctx, err)
	}
	found, err := s.h.GetShipmentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := historyResponse{
		ShipmentID:     found.ShipmentID.String(),
		TrackingNumber: found.TrackingNumber,
		Status:         found.Status,
		DeliveryFee:    found.DeliveryFee.String(),
		CODAmount:      found.CODAmount.String(),
		History:        make([]historyEntry, len(found.Entries)),
	}
	for i, entry := range found.Entries {
		response.History[i] = historyEntry{Status: entry.Status, Note: entry.Note, CreatedAt: entry.CreatedAt}
	}
	return ctx.JSON(http.StatusOK, response)
}
