package http

import (
	"net/http"

	"courierhub/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type receiveRequest struct {
	TrackingNumbers []string `json:"tracking_numbers"`
}

type dispatchRequest struct {
	CourierID   string   `json:"courier_id"`
	ShipmentIDs []string `json:"shipment_ids"`
}

type reconcileRequest struct {
	CourierID        string   `json:"courier_id"`
	CashConfirmedIDs []string `json:"cash_confirmed_ids"`
	ReturnedIDs      []string `json:"returned_ids"`
}

type manifestStatusRequest struct {
	Status string `json:"status"`
}

type manifestResponse struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	CourierID string `json:"courier_id"`
	Status    string `json:"status"`
}

// ReceiveAtHub handles POST /api/v1/warehouse/receive. Failures of single
// items are reported in the body; the response is still 200.
func (s *Server) ReceiveAtHub(ctx echo.Context) error {
	var req receiveRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveAtHubCommand(req.TrackingNumbers)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ReceiveAtHub.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toBatchResponse(result))
}

// DispatchToCourier handles POST /api/v1/warehouse/dispatch. Malformed
// shipment ids are reported per item like any other failed shipment.
func (s *Server) DispatchToCourier(ctx echo.Context) error {
	var req dispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	courierID, err := parseUUID("courier_id", req.CourierID)
	if err != nil {
		return s.fail(ctx, err)
	}
	shipmentIDs := parseBatchIDs("shipment_ids", req.ShipmentIDs)
	if len(shipmentIDs.valid()) == 0 && shipmentIDs.hasInvalid() {
		return ctx.JSON(http.StatusOK, mergeBatch(commands.BatchResult{}, shipmentIDs))
	}

	cmd, err := commands.NewDispatchToCourierCommand(courierID, shipmentIDs.valid())
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.DispatchToCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mergeBatch(result, shipmentIDs))
}

// ReconcileWithCourier handles POST /api/v1/warehouse/reconcile.
func (s *Server) ReconcileWithCourier(ctx echo.Context) error {
	var req reconcileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	courierID, err := parseUUID("courier_id", req.CourierID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cashIDs := parseBatchIDs("cash_confirmed_ids", req.CashConfirmedIDs)
	returnedIDs := parseBatchIDs("returned_ids", req.ReturnedIDs)
	if len(cashIDs.valid())+len(returnedIDs.valid()) == 0 && (cashIDs.hasInvalid() || returnedIDs.hasInvalid()) {
		return ctx.JSON(http.StatusOK, mergeBatch(commands.BatchResult{}, cashIDs, returnedIDs))
	}

	cmd, err := commands.NewReconcileWithCourierCommand(courierID, cashIDs.valid(), returnedIDs.valid())
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.ReconcileWithCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mergeBatch(result, cashIDs, returnedIDs))
}

// ChangeManifestStatus handles PATCH /api/v1/manifests/:id/status.
func (s *Server) ChangeManifestStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req manifestStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeManifestStatusCommand(id, req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	m, err := s.h.ChangeManifestStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, manifestResponse{
		ID:        m.ID().String(),
		Number:    m.Number(),
		CourierID: m.CourierID().String(),
		Status:    m.Status().String(),
	})
}
