package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// ErrNoSettleableShipments is returned when a payout run finds nothing to pay.
var ErrNoSettleableShipments = errors.New("no settleable shipments in period")

// CourierShare is the part of the delivery fee earned by the courier.
var CourierShare = decimal.RequireFromString("0.70")

// CreatedPayout summarises a sealed payout.
type CreatedPayout struct {
	ID        kernel.UUID
	NetAmount kernel.Money
	ItemCount int
}

// payoutRun describes how one payout type selects, prices and marks shipments.
type payoutRun struct {
	payoutType payout.Type
	role       user.Role
	find       func(ctx context.Context, uow PayoutUoW, userID kernel.UUID, from, to time.Time) ([]*shipment.Shipment, error)
	earning    func(s *shipment.Shipment) kernel.Money
	attach     func(s *shipment.Shipment, payoutID kernel.UUID) error
}

var courierRun = payoutRun{
	payoutType: payout.CourierSettlement,
	role:       user.Courier,
	find: func(ctx context.Context, uow PayoutUoW, userID kernel.UUID, from, to time.Time) ([]*shipment.Shipment, error) {
		return uow.ShipmentRepository().FindCourierSettleable(ctx, userID, from, to)
	},
	earning: func(s *shipment.Shipment) kernel.Money {
		return s.DeliveryFee().Mul(CourierShare)
	},
	attach: (*shipment.Shipment).AttachCourierPayout,
}

var merchantRun = payoutRun{
	payoutType: payout.MerchantPayout,
	role:       user.Merchant,
	find: func(ctx context.Context, uow PayoutUoW, userID kernel.UUID, from, to time.Time) ([]*shipment.Shipment, error) {
		return uow.ShipmentRepository().FindMerchantSettleable(ctx, userID, from, to)
	},
	earning: (*shipment.Shipment).DeliveryFee,
	attach:  (*shipment.Shipment).AttachMerchantPayout,
}

// CreateCourierPayoutCommandHandler pays a courier their share of the delivery
// fee for every settleable shipment in a period. The courier row is locked for
// the run and every paid shipment is marked with the payout id in the same
// transaction, so a shipment is paid to its courier at most once.
//
// Example:
//
//	cmd, err := NewCreateCourierPayoutCommand(courierID, weekStart, weekEnd)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoSettleableShipments):
//	    log.Println("nothing to pay this week")
//	case err != nil:
//	    return err
//	default:
//	    log.Printf("payout %s: %s", created.ID, created.NetAmount)
//	}
type CreateCourierPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewCreateCourierPayoutCommandHandler creates the courier settlement handler.
func NewCreateCourierPayoutCommandHandler(uowFactory PayoutUoWFactory) CreateCourierPayoutCommandHandler {
	return CreateCourierPayoutCommandHandler{uowFactory: uowFactory}
}

// Handle pays the courier their share of every DELIVERED, cash-unreconciled
// shipment dispatched to them and delivered in the period.
func (h CreateCourierPayoutCommandHandler) Handle(ctx context.Context, cmd CreateCourierPayoutCommand) (CreatedPayout, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedPayout{}, err
	}
	return createPayout(ctx, h.uowFactory, courierRun, cmd.period)
}

// CreateMerchantPayoutCommandHandler batches a merchant's delivered shipments
// into one payout. Like the courier run it locks the beneficiary row and marks
// every included shipment.
type CreateMerchantPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewCreateMerchantPayoutCommandHandler creates the merchant payout handler.
func NewCreateMerchantPayoutCommandHandler(uowFactory PayoutUoWFactory) CreateMerchantPayoutCommandHandler {
	return CreateMerchantPayoutCommandHandler{uowFactory: uowFactory}
}

// Handle pays the merchant the full fee of every DELIVERED shipment delivered
// in the period that no merchant payout covers yet.
func (h CreateMerchantPayoutCommandHandler) Handle(ctx context.Context, cmd CreateMerchantPayoutCommand) (CreatedPayout, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedPayout{}, err
	}
	return createPayout(ctx, h.uowFactory, merchantRun, cmd.period)
}

// createPayout locks the beneficiary row so runs for one user serialize, then
// writes the payout, its items and every shipment's marker in one transaction.
func createPayout(ctx context.Context, uowFactory PayoutUoWFactory, run payoutRun, period settlementPeriod) (CreatedPayout, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedPayout{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	beneficiary, err := uow.UserRepository().GetForUpdate(ctx, period.userID)
	if err != nil {
		return CreatedPayout{}, err
	}
	if err = beneficiary.RequireRole(run.role); err != nil {
		return CreatedPayout{}, err
	}

	shipments, err := run.find(ctx, uow, period.userID, period.start, period.end)
	if err != nil {
		return CreatedPayout{}, err
	}
	if len(shipments) == 0 {
		return CreatedPayout{}, fmt.Errorf("%w: %s for %s", ErrNoSettleableShipments, run.payoutType, period.userID)
	}

	p, err := payout.NewPayout(kernel.NewUUID(), period.userID, run.payoutType, period.start, period.end, time.Now())
	if err != nil {
		return CreatedPayout{}, err
	}
	for _, s := range shipments {
		if err = p.AddItem(payout.ItemSourceShipment, s.ID(), run.earning(s), s.TrackingNumber()); err != nil {
			return CreatedPayout{}, err
		}
	}
	if err = p.Seal(); err != nil {
		return CreatedPayout{}, err
	}
	if err = uow.PayoutRepository().Add(ctx, p); err != nil {
		return CreatedPayout{}, err
	}

	shipmentRepo := uow.ShipmentRepository()
	for _, s := range shipments {
		if err = run.attach(s, p.ID()); err != nil {
			return CreatedPayout{}, err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return CreatedPayout{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedPayout{}, err
	}

	return CreatedPayout{ID: p.ID(), NetAmount: p.NetAmount(), ItemCount: len(p.Items())}, nil
}
