package commands_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/postgres/testdb"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/ports"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type funcFactory[T any] func() T

func (f funcFactory[T]) Create() T {
	return f()
}

// narrow adapts the full unit of work factory to a handler's narrow interface.
func narrow[T any](f ports.UnitOfWorkFactory) funcFactory[T] {
	return func() T {
		return any(f.Create()).(T)
	}
}

// seqNumbers replays queued numbers first, then counts up.
type seqNumbers struct {
	mu     sync.Mutex
	queued []string
	n      int
}

func (g *seqNumbers) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.queued) > 0 {
		v := g.queued[0]
		g.queued = g.queued[1:]
		return v
	}
	g.n++
	return fmt.Sprintf("%s%06d", prefix, g.n)
}

func (g *seqNumbers) NextTrackingNumber() string { return g.next("CS-T") }
func (g *seqNumbers) NextManifestNumber() string { return g.next("MF-T") }

// env is a migrated sqlite database with the canonical statuses seeded.
type env struct {
	t       *testing.T
	db      *gorm.DB
	uow     *postgres.GormUnitOfWorkFactory
	numbers *seqNumbers
	log     *zap.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testdb.Open(t)
	e := &env{
		t:       t,
		db:      db,
		uow:     postgres.NewGormUnitOfWorkFactory(db),
		numbers: &seqNumbers{},
		log:     zap.NewNop(),
	}

	_, err := commands.NewSeedStatusesCommandHandler(narrow[commands.StatusUoW](e.uow)).
		Handle(t.Context(), commands.NewSeedStatusesCommand())
	require.NoError(t, err)
	return e
}

func (e *env) registerUser(name, role string) kernel.UUID {
	e.t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, name, role)
	require.NoError(e.t, err)
	require.NoError(e.t, commands.NewRegisterUserCommandHandler(narrow[commands.UserUoW](e.uow)).Handle(e.t.Context(), cmd))
	return id
}

func (e *env) createZone(defaultFee string) kernel.UUID {
	e.t.Helper()
	var fee *kernel.Money
	if defaultFee != "" {
		m := kernel.MustMoney(defaultFee)
		fee = &m
	}
	cmd, err := commands.NewCreateZoneCommand("Zone "+defaultFee, fee)
	require.NoError(e.t, err)
	zone, err := commands.NewCreateZoneCommandHandler(narrow[commands.PricingUoW](e.uow)).Handle(e.t.Context(), cmd)
	require.NoError(e.t, err)
	return zone.ID()
}

func (e *env) createShipmentHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(narrow[commands.CreateShipmentUoW](e.uow), e.numbers)
}

func (e *env) createShipment(merchantID, zoneID kernel.UUID, cod string, priority pricing.Priority) commands.CreatedShipment {
	e.t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(merchantID, zoneID, kernel.NewUUID(),
		kernel.MustMoney("100.00"), kernel.MustMoney(cod), priority,
		shipment.SourceMerchant, shipment.PaidByRecipient)
	require.NoError(e.t, err)
	created, err := e.createShipmentHandler().Handle(e.t.Context(), cmd)
	require.NoError(e.t, err)
	return created
}

func (e *env) advance(id kernel.UUID, target status.Name) {
	e.t.Helper()
	cmd, err := commands.NewAdvanceShipmentCommand(id, target.String(), "")
	require.NoError(e.t, err)
	_, err = commands.NewAdvanceShipmentCommandHandler(narrow[commands.ShipmentUoW](e.uow)).Handle(e.t.Context(), cmd)
	require.NoError(e.t, err)
}

func (e *env) receive(trackingNumbers ...string) commands.BatchResult {
	e.t.Helper()
	cmd, err := commands.NewReceiveAtHubCommand(trackingNumbers)
	require.NoError(e.t, err)
	result, err := commands.NewReceiveAtHubCommandHandler(narrow[commands.ShipmentUoW](e.uow), e.log).Handle(e.t.Context(), cmd)
	require.NoError(e.t, err)
	return result
}

func (e *env) dispatchHandler() commands.DispatchToCourierCommandHandler {
	return commands.NewDispatchToCourierCommandHandler(narrow[commands.WarehouseUoW](e.uow), e.numbers, e.log)
}

func (e *env) dispatch(courierID kernel.UUID, ids ...kernel.UUID) commands.BatchResult {
	e.t.Helper()
	cmd, err := commands.NewDispatchToCourierCommand(courierID, ids)
	require.NoError(e.t, err)
	result, err := e.dispatchHandler().Handle(e.t.Context(), cmd)
	require.NoError(e.t, err)
	return result
}

// deliveredBy walks a new shipment through the hub to DELIVERED by courierID.
func (e *env) deliveredBy(courierID, merchantID, zoneID kernel.UUID) commands.CreatedShipment {
	e.t.Helper()
	created := e.createShipment(merchantID, zoneID, "0.00", pricing.Standard)
	require.Equal(e.t, 1, e.receive(created.TrackingNumber).Processed)
	require.Equal(e.t, 1, e.dispatch(courierID, created.ID).Processed)
	e.advance(created.ID, status.OutForDelivery)
	e.advance(created.ID, status.Delivered)
	return created
}

func (e *env) shipment(id kernel.UUID) *shipment.Shipment {
	e.t.Helper()
	s, err := e.uow.Create().ShipmentRepository().Get(e.t.Context(), id)
	require.NoError(e.t, err)
	return s
}

func (e *env) history(id kernel.UUID) []shipment.HistoryEntry {
	e.t.Helper()
	h, err := e.uow.Create().ShipmentRepository().History(e.t.Context(), id)
	require.NoError(e.t, err)
	return h
}

func (e *env) window() (time.Time, time.Time) {
	now := time.Now().UTC()
	return now.Add(-time.Hour), now.Add(time.Hour)
}
