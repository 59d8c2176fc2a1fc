package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusRepository struct {
	ports.StatusRepository
	mock.Mock
}

func (m *MockStatusRepository) GetByName(ctx context.Context, name status.Name) (status.Status, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(status.Status), args.Error(1)
}

type MockShipmentRepository struct {
	ports.ShipmentRepository
	mock.Mock
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func mustStatus(t *testing.T, name status.Name) status.Status {
	t.Helper()
	s, err := status.NewStatus(kernel.NewUUID(), name, 0)
	require.NoError(t, err)
	return s
}

func newPendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(shipment.NewParams{
		ID:             kernel.NewUUID(),
		TrackingNumber: "CS-MOCK1",
		MerchantID:     kernel.NewUUID(),
		ZoneID:         kernel.NewUUID(),
		RecipientID:    kernel.NewUUID(),
		ItemValue:      kernel.MustMoney("10.00"),
		CODAmount:      kernel.ZeroMoney,
		DeliveryFee:    kernel.MustMoney("50.00"),
		Priority:       pricing.Standard,
		SourceType:     shipment.SourceMerchant,
		FeePaidBy:      shipment.PaidByMerchant,
		Initial:        mustStatus(t, status.PendingApproval),
		Now:            time.Now(),
	})
	require.NoError(t, err)
	return s
}

func TestAdvanceShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t)
	cmd, err := commands.NewAdvanceShipmentCommand(s.ID(), "APPROVED", "")
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByName", ctx, status.Approved).Return(mustStatus(t, status.Approved), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceShipmentCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, status.Approved, got.Status().Name())
	statusRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceShipmentCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockShipmentUoWFactory)
	h := commands.NewAdvanceShipmentCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.AdvanceShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrAdvanceShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAdvanceShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceShipmentCommand(kernel.NewUUID(), "APPROVED", "")
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAdvanceShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceShipmentCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t)
	cmd, err := commands.NewAdvanceShipmentCommand(s.ID(), "APPROVED", "")
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByName", ctx, status.Approved).Return(mustStatus(t, status.Approved), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(errs.NewVersionIsInvalidError("shipment")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAdvanceShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t)
	cmd, err := commands.NewAdvanceShipmentCommand(s.ID(), "APPROVED", "")
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByName", ctx, status.Approved).Return(mustStatus(t, status.Approved), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}

func TestReportFailedAttemptCommandHandler_UsesClassifier(t *testing.T) {
	ctx := t.Context()
	s := newPendingShipment(t)
	cmd, err := commands.NewReportFailedAttemptCommand(s.ID(), "gate locked")
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", ctx, status.OnHold).Return(mustStatus(t, status.OnHold), nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	shipmentRepo.On("Update", ctx, s).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportFailedAttemptCommandHandler(factory, classifierFunc(func(string) status.Name {
		return status.OnHold
	}))
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, status.OnHold, got.Status().Name())
	statusRepo.AssertExpectations(t)
}

type classifierFunc func(string) status.Name

func (f classifierFunc) Classify(reason string) status.Name { return f(reason) }

func TestReportFailedAttemptCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewReportFailedAttemptCommand(kernel.NewUUID(), "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
