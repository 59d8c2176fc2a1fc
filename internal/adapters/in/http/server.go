package http

import (
	"fmt"
	"net/http"
	"strings"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	SeedStatuses commands.SeedStatusesCommandHandler
	CreateStatus commands.CreateStatusCommandHandler
	RenameStatus commands.RenameStatusCommandHandler
	DeleteStatus commands.DeleteStatusCommandHandler

	RegisterUser commands.RegisterUserCommandHandler

	CreateZone            commands.CreateZoneCommandHandler
	SetMerchantZonePrice  commands.SetMerchantZonePriceCommandHandler
	SetDefaultDeliveryFee commands.SetDefaultDeliveryFeeCommandHandler

	CreateShipment      commands.CreateShipmentCommandHandler
	AdvanceShipment     commands.AdvanceShipmentCommandHandler
	ReportFailedAttempt commands.ReportFailedAttemptCommandHandler
	CreateReturn        commands.CreateReturnCommandHandler

	ReceiveAtHub         commands.ReceiveAtHubCommandHandler
	DispatchToCourier    commands.DispatchToCourierCommandHandler
	ReconcileWithCourier commands.ReconcileWithCourierCommandHandler
	ChangeManifestStatus commands.ChangeManifestStatusCommandHandler

	CreateCourierPayout  commands.CreateCourierPayoutCommandHandler
	CreateMerchantPayout commands.CreateMerchantPayoutCommandHandler
	UpdatePayoutStatus   commands.UpdatePayoutStatusCommandHandler

	GetShipmentHistory queries.GetShipmentHistoryQueryHandler
	GetPayout          queries.GetPayoutQueryHandler
	ListStatuses       queries.ListStatusesQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h   Handlers
	log *zap.Logger
}

func NewServer(handlers Handlers, log *zap.Logger) *Server {
	return &Server{h: handlers, log: logger.Component(log, "http")}
}

// NewEcho builds an echo instance with recovery, request logging and every route.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	s.Register(e)
	return e
}

// Register mounts the API under /api/v1 and the health check at /health.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.GET("/statuses", s.ListStatuses)
	api.POST("/statuses", s.CreateStatus)
	api.POST("/statuses/seed", s.SeedStatuses)
	api.PATCH("/statuses/:id", s.RenameStatus)
	api.DELETE("/statuses/:id", s.DeleteStatus)

	api.POST("/users", s.RegisterUser)

	api.POST("/zones", s.CreateZone)
	api.PUT("/merchants/:merchantId/zones/:zoneId/price", s.SetMerchantZonePrice)
	api.PUT("/settings/default-delivery-fee", s.SetDefaultDeliveryFee)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/tracking/:trackingNumber/history", s.GetShipmentHistory)
	api.POST("/shipments/:id/status", s.AdvanceShipment)
	api.POST("/shipments/:id/failed-attempts", s.ReportFailedAttempt)
	api.POST("/shipments/:id/returns", s.CreateReturn)

	api.POST("/warehouse/receive", s.ReceiveAtHub)
	api.POST("/warehouse/dispatch", s.DispatchToCourier)
	api.POST("/warehouse/reconcile", s.ReconcileWithCourier)
	api.PATCH("/manifests/:id/status", s.ChangeManifestStatus)

	api.POST("/payouts/courier", s.CreateCourierPayout)
	api.POST("/payouts/merchant", s.CreateMerchantPayout)
	api.GET("/payouts/:id", s.GetPayout)
	api.PATCH("/payouts/:id/status", s.UpdatePayoutStatus)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return parseUUID(name, ctx.Param(name))
}

func parseUUID(name, raw string) (kernel.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// batchIDs parses a list of ids item by item. Malformed entries become
// per item failures instead of rejecting the whole batch.
type batchIDs struct {
	raw     []string
	ids     []kernel.UUID
	invalid map[int]error
}

func parseBatchIDs(name string, raw []string) batchIDs {
	b := batchIDs{raw: raw, ids: make([]kernel.UUID, len(raw)), invalid: map[int]error{}}
	for i, r := range raw {
		id, err := parseUUID(name, r)
		if err != nil {
			b.invalid[i] = err
			continue
		}
		b.ids[i] = id
	}
	return b
}

func (b batchIDs) valid() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.ids))
	for i, id := range b.ids {
		if _, bad := b.invalid[i]; !bad {
			ids = append(ids, id)
		}
	}
	return ids
}

func (b batchIDs) hasInvalid() bool {
	return len(b.invalid) > 0
}

// mergeBatch reports malformed ids next to the handler's failures, keeping
// the input order of lists.
func mergeBatch(r commands.BatchResult, lists ...batchIDs) batchResponse {
	pending := r.Errors
	failures := make([]string, 0, len(pending))
	for _, b := range lists {
		for i, raw := range b.raw {
			if err, bad := b.invalid[i]; bad {
				failures = append(failures, fmt.Sprintf("%s: %v", raw, err))
				continue
			}
			if len(pending) > 0 && strings.HasPrefix(pending[0], b.ids[i].String()+": ") {
				failures = append(failures, pending[0])
				pending = pending[1:]
			}
		}
	}
	failures = append(failures, pending...)
	return batchResponse{Processed: r.Processed, Errors: failures}
}

// parseMoney treats an empty string as zero.
func parseMoney(raw string) (kernel.Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.ZeroMoney, nil
	}
	return kernel.MoneyFromString(raw)
}

func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type batchResponse struct {
	Processed int      `json:"processed"`
	Errors    []string `json:"errors"`
}

func toBatchResponse(r commands.BatchResult) batchResponse {
	failures := r.Errors
	if failures == nil {
		failures = []string{}
	}
	return batchResponse{Processed: r.Processed, Errors: failures}
}
