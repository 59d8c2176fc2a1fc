package http

import (
	"net/http"
	"strings"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createZoneRequest struct {
	Name       string  `json:"name"`
	DefaultFee *string `json:"default_fee"`
}

type zoneResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DefaultFee *string `json:"default_fee"`
}

type feeRequest struct {
	Fee string `json:"fee"`
}

type merchantZonePriceResponse struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchant_id"`
	ZoneID     string `json:"zone_id"`
	Fee        string `json:"fee"`
	Active     bool   `json:"active"`
}

// CreateZone handles POST /api/v1/zones. A zone without default_fee prices
// through the system setting.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req createZoneRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var defaultFee *kernel.Money
	if req.DefaultFee != nil && strings.TrimSpace(*req.DefaultFee) != "" {
		fee, err := kernel.MoneyFromString(strings.TrimSpace(*req.DefaultFee))
		if err != nil {
			return s.fail(ctx, err)
		}
		defaultFee = &fee
	}

	cmd, err := commands.NewCreateZoneCommand(req.Name, defaultFee)
	if err != nil {
		return s.fail(ctx, err)
	}
	zone, err := s.h.CreateZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := zoneResponse{ID: zone.ID().String(), Name: zone.Name()}
	if fee := zone.DefaultFee(); fee != nil {
		v := fee.String()
		response.DefaultFee = &v
	}
	return ctx.JSON(http.StatusCreated, response)
}

// SetMerchantZonePrice handles PUT /api/v1/merchants/:merchantId/zones/:zoneId/price.
func (s *Server) SetMerchantZonePrice(ctx echo.Context) error {
	merchantID, err := pathUUID(ctx, "merchantId")
	if err != nil {
		return s.fail(ctx, err)
	}
	zoneID, err := pathUUID(ctx, "zoneId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req feeRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	fee, err := kernel.MoneyFromString(strings.TrimSpace(req.Fee))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetMerchantZonePriceCommand(merchantID, zoneID, fee)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := s.h.SetMerchantZonePrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, merchantZonePriceResponse{
		ID:         price.ID().String(),
		MerchantID: price.MerchantID().String(),
		ZoneID:     price.ZoneID().String(),
		Fee:        price.Fee().String(),
		Active:     price.IsActive(),
	})
}

// SetDefaultDeliveryFee handles PUT /api/v1/settings/default-delivery-fee.
func (s *Server) SetDefaultDeliveryFee(ctx echo.Context) error {
	var req feeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	fee, err := kernel.MoneyFromString(strings.TrimSpace(req.Fee))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetDefaultDeliveryFeeCommand(fee)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.SetDefaultDeliveryFee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
