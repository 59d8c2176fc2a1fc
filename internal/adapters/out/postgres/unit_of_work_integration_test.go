package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/postgres/outboxrepo"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	statuses  map[status.Name]status.Status
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open("postgres", dsn, postgres_adapter.PoolConfig{MaxOpenConns: 10}, nil)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates every table and reseeds the status registry.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE outbox_messages, payout_items, payouts, return_links,
		shipment_status_history, shipments, manifests, settings, merchant_zone_prices, zones,
		users, statuses CASCADE`).Error
	suite.Require().NoError(err)

	ctx := context.Background()
	repo := suite.factory.Create().StatusRepository()
	suite.statuses = make(map[status.Name]status.Status)
	for i, name := range status.CanonicalNames() {
		s, err := status.NewStatus(kernel.NewUUID(), name, i)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, s))
		suite.statuses[name] = s
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment(trackingNumber string) *shipment.Shipment {
	s, err := shipment.NewShipment(shipment.NewParams{
		ID:             kernel.NewUUID(),
		TrackingNumber: trackingNumber,
		MerchantID:     kernel.NewUUID(),
		ZoneID:         kernel.NewUUID(),
		RecipientID:    kernel.NewUUID(),
		ItemValue:      kernel.MustMoney("100.00"),
		CODAmount:      kernel.MustMoney("150.00"),
		DeliveryFee:    kernel.MustMoney("50.00"),
		Priority:       pricing.Standard,
		SourceType:     shipment.SourceMerchant,
		FeePaidBy:      shipment.PaidByRecipient,
		Initial:        suite.statuses[status.PendingApproval],
		Now:            time.Now(),
	})
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) countOutbox() int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(&outboxrepo.OutboxDTO{}).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWritesShipmentHistoryAndOutbox() {
	ctx := context.Background()
	s := suite.newShipment("CS-COMMIT")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().ShipmentRepository().GetByTrackingNumber(ctx, "CS-COMMIT")
	suite.Require().NoError(err)
	suite.Equal(status.PendingApproval, got.Status().Name())
	suite.True(got.DeliveryFee().Equal(kernel.MustMoney("50.00")))

	history, err := suite.factory.Create().ShipmentRepository().History(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal("Shipment created", history[0].Note())

	messages, err := suite.factory.Create().OutboxRepository().FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(shipment.StatusChangedEventName, messages[0].EventName)
	suite.True(messages[0].AggregateID.IsEqual(s.ID()))
	suite.Contains(string(messages[0].Payload), "CS-COMMIT")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsShipmentAndEvents() {
	ctx := context.Background()
	s := suite.newShipment("CS-ROLLBACK")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ShipmentRepository().GetByTrackingNumber(ctx, "CS-ROLLBACK")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Zero(suite.countOutbox())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStaleShipmentUpdateFails() {
	ctx := context.Background()
	s := suite.newShipment("CS-STALE")
	suite.Require().NoError(suite.factory.Create().ShipmentRepository().Add(ctx, s))

	first, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(suite.statuses[status.Approved], "", time.Now()))
	suite.Require().NoError(suite.factory.Create().ShipmentRepository().Update(ctx, first))

	suite.Require().NoError(second.ChangeStatus(suite.statuses[status.Cancelled], "", time.Now()))
	err = suite.factory.Create().ShipmentRepository().Update(ctx, second)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.ErrorIs(err, errs.ErrConflict)

	got, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Approved, got.Status().Name())
	suite.Equal(1, got.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateTrackingNumberIsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().ShipmentRepository().Add(ctx, suite.newShipment("CS-DUP")))

	err := suite.factory.Create().ShipmentRepository().Add(ctx, suite.newShipment("CS-DUP"))
	suite.ErrorIs(err, errs.ErrConflict)
}

// TestUserRowLockSerializesWriters holds the lock in one transaction and
// checks that a second locking read waits for it.
func (suite *UnitOfWorkIntegrationTestSuite) TestUserRowLockSerializesWriters() {
	ctx := context.Background()
	courier, err := user.NewUser(kernel.NewUUID(), "Sam", user.Courier)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, courier))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	_, err = holder.UserRepository().GetForUpdate(ctx, courier.ID())
	suite.Require().NoError(err)

	acquired := make(chan time.Time, 1)
	go func() {
		waiter := suite.factory.Create()
		if err := waiter.Begin(ctx); err != nil {
			return
		}
		defer func() { _ = waiter.Rollback(ctx) }()
		if _, err := waiter.UserRepository().GetForUpdate(ctx, courier.ID()); err == nil {
			acquired <- time.Now()
		}
	}()

	time.Sleep(300 * time.Millisecond)
	released := time.Now()
	suite.Require().NoError(holder.Commit(ctx))

	select {
	case at := <-acquired:
		suite.True(at.After(released), "second lock must wait for the first transaction")
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the lock")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPayoutRoundTripWithEvents() {
	ctx := context.Background()
	now := time.Now().UTC()
	p, err := payout.NewPayout(kernel.NewUUID(), kernel.NewUUID(), payout.CourierSettlement,
		now.Add(-7*24*time.Hour), now, now)
	suite.Require().NoError(err)
	suite.Require().NoError(p.AddItem(payout.ItemSourceShipment, kernel.NewUUID(), kernel.MustMoney("35.00"), "CS-1"))
	suite.Require().NoError(p.AddItem(payout.ItemSourceShipment, kernel.NewUUID(), kernel.MustMoney("14.00"), "CS-2"))
	suite.Require().NoError(p.Seal())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PayoutRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().PayoutRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.NetAmount().Equal(kernel.MustMoney("49.00")))
	suite.Len(got.Items(), 2)
	suite.Equal(payout.Pending, got.Status())
	suite.Equal(int64(1), suite.countOutbox())
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
