package queries_test

import (
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/postgres/testdb"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type QueriesTestSuite struct {
	suite.Suite
	db  *gorm.DB
	uow ports.UnitOfWorkFactory
}

func (suite *QueriesTestSuite) SetupTest() {
	suite.db = testdb.Open(suite.T())
	suite.uow = postgres.NewGormUnitOfWorkFactory(suite.db)

	repo := suite.uow.Create().StatusRepository()
	for position, name := range status.CanonicalNames() {
		s, err := status.NewStatus(kernel.NewUUID(), name, position)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(suite.T().Context(), s))
	}
}

func (suite *QueriesTestSuite) statusNamed(name status.Name) status.Status {
	s, err := suite.uow.Create().StatusRepository().GetByName(suite.T().Context(), name)
	suite.Require().NoError(err)
	return s
}

func (suite *QueriesTestSuite) TestGetShipmentHistory() {
	ctx := suite.T().Context()
	s, err := shipment.NewShipment(shipment.NewParams{
		ID:             kernel.NewUUID(),
		TrackingNumber: "CS-HIST1",
		MerchantID:     kernel.NewUUID(),
		ZoneID:         kernel.NewUUID(),
		RecipientID:    kernel.NewUUID(),
		ItemValue:      kernel.MustMoney("10.00"),
		CODAmount:      kernel.MustMoney("120.00"),
		DeliveryFee:    kernel.MustMoney("45.50"),
		Priority:       pricing.Standard,
		SourceType:     shipment.SourceMerchant,
		FeePaidBy:      shipment.PaidByRecipient,
		Initial:        suite.statusNamed(status.PendingApproval),
		Now:            time.Now(),
	})
	suite.Require().NoError(err)
	// The pool holds a single connection, so lookups happen before Begin.
	received := suite.statusNamed(status.ReceivedAtHub)

	uow := suite.uow.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(s.ChangeStatus(received, "", time.Now()))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetShipmentHistoryQuery(" CS-HIST1 ")
	suite.Require().NoError(err)
	got, err := queries.NewGetShipmentHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(got.ShipmentID.IsEqual(s.ID()))
	suite.Equal("RECEIVED_AT_HUB", got.Status)
	suite.Equal("45.50", got.DeliveryFee.String())
	suite.Equal("120.00", got.CODAmount.String())
	suite.Require().Len(got.Entries, 2)
	suite.Equal("PENDING_APPROVAL", got.Entries[0].Status)
	suite.Equal("Shipment created", got.Entries[0].Note)
	suite.Equal("Status changed to RECEIVED_AT_HUB", got.Entries[1].Note)
	suite.False(got.Entries[1].CreatedAt.Before(got.Entries[0].CreatedAt))
}

func (suite *QueriesTestSuite) TestGetShipmentHistory_UnknownTrackingNumber() {
	query, err := queries.NewGetShipmentHistoryQuery("CS-NOPE")
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentHistoryQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestGetPayout() {
	ctx := suite.T().Context()
	courier, err := user.NewUser(kernel.NewUUID(), "Sam", user.Courier)
	suite.Require().NoError(err)

	now := time.Now()
	p, err := payout.NewPayout(kernel.NewUUID(), courier.ID(), payout.CourierSettlement, now.Add(-time.Hour), now, now)
	suite.Require().NoError(err)
	first, second := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(p.AddItem(payout.ItemSourceShipment, first, kernel.MustMoney("70.00"), "CS-1"))
	suite.Require().NoError(p.AddItem(payout.ItemSourceShipment, second, kernel.MustMoney("140.00"), "CS-2"))
	suite.Require().NoError(p.Seal())

	uow := suite.uow.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, courier))
	suite.Require().NoError(uow.PayoutRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetPayoutQuery(p.ID())
	suite.Require().NoError(err)
	got, err := queries.NewGetPayoutQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("COURIER_SETTLEMENT", got.Type)
	suite.Equal("PENDING", got.Status)
	suite.Equal("210.00", got.NetAmount.String())
	suite.Nil(got.PaidAt)
	suite.Require().Len(got.Items, 2)
	total := kernel.ZeroMoney
	for _, item := range got.Items {
		suite.Equal(payout.ItemSourceShipment, item.SourceType)
		total = total.Add(item.Amount)
	}
	suite.True(total.Equal(got.NetAmount))
}

func (suite *QueriesTestSuite) TestGetPayout_NotFound() {
	query, err := queries.NewGetPayoutQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetPayoutQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestListStatuses() {
	got, err := queries.NewListStatusesQueryHandler(suite.db).Handle(suite.T().Context(), queries.NewListStatusesQuery())
	suite.Require().NoError(err)

	suite.Require().Len(got, len(status.CanonicalNames()))
	suite.Equal("PENDING", got[0].Name)
	suite.True(got[0].Required)
	for _, s := range got {
		if s.Name == status.OnHold.String() {
			suite.False(s.Required)
		}
	}
}

func (suite *QueriesTestSuite) TestQueries_NotConstructed() {
	ctx := suite.T().Context()

	_, err := queries.NewGetShipmentHistoryQueryHandler(suite.db).Handle(ctx, queries.GetShipmentHistoryQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetShipmentHistoryQueryIsNotConstructed)

	_, err = queries.NewGetPayoutQueryHandler(suite.db).Handle(ctx, queries.GetPayoutQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetPayoutQueryIsNotConstructed)

	_, err = queries.NewListStatusesQueryHandler(suite.db).Handle(ctx, queries.ListStatusesQuery{})
	suite.Require().ErrorIs(err, queries.ErrListStatusesQueryIsNotConstructed)

	_, err = queries.NewGetShipmentHistoryQuery("  ")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
