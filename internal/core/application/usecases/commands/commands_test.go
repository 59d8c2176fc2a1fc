package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney("1.00"), kernel.MustMoney("-1.00"), pricing.Standard,
		shipment.UnknownSource, shipment.PaidByMerchant)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateStatusCommand(t *testing.T) {
	cmd, err := commands.NewCreateStatusCommand("  AWAITING_CUSTOMS ", 3)
	require.NoError(t, err)
	assert.Equal(t, "AWAITING_CUSTOMS", cmd.Name().String())

	_, err = commands.NewCreateStatusCommand("", 3)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateStatusCommand("X", -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRegisterUserCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, " Sam ", "COURIER")
	require.NoError(t, err)
	assert.Equal(t, "Sam", cmd.Name())
	assert.Equal(t, user.Courier, cmd.Role())

	_, err = commands.NewRegisterUserCommand(id, "Sam", "courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDispatchToCourierCommand_CopiesIDs(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewDispatchToCourierCommand(kernel.NewUUID(), ids)
	require.NoError(t, err)

	ids[0] = kernel.NewUUID()
	assert.NotEqual(t, ids[0], cmd.ShipmentIDs()[0])

	_, err = commands.NewDispatchToCourierCommand(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReconcileWithCourierCommand_RequiresSomeIDs(t *testing.T) {
	_, err := commands.NewReconcileWithCourierCommand(kernel.NewUUID(), nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeManifestStatusCommand(t *testing.T) {
	cmd, err := commands.NewChangeManifestStatusCommand(kernel.NewUUID(), "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, manifest.InProgress, cmd.Target())

	_, err = commands.NewChangeManifestStatusCommand(kernel.NewUUID(), "LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPricingCommands(t *testing.T) {
	negative := kernel.MustMoney("-5.00")

	_, err := commands.NewCreateZoneCommand(" ", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateZoneCommand("North", &negative)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewSetDefaultDeliveryFeeCommand(negative)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestHandlers_RejectZeroValueCommands(t *testing.T) {
	ctx := t.Context()

	_, err := commands.NewCreateShipmentCommandHandler(nil, nil).Handle(ctx, commands.CreateShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)

	_, err = commands.NewCreateReturnCommandHandler(nil, nil).Handle(ctx, commands.CreateReturnCommand{})
	require.ErrorIs(t, err, commands.ErrCreateReturnCommandIsNotConstructed)

	_, err = commands.NewDispatchToCourierCommandHandler(nil, nil, nil).Handle(ctx, commands.DispatchToCourierCommand{})
	require.ErrorIs(t, err, commands.ErrDispatchToCourierCommandIsNotConstructed)

	_, err = commands.NewCreateCourierPayoutCommandHandler(nil).Handle(ctx, commands.CreateCourierPayoutCommand{})
	require.ErrorIs(t, err, commands.ErrCreateCourierPayoutCommandIsNotConstructed)

	_, err = commands.NewUpdatePayoutStatusCommandHandler(nil).Handle(ctx, commands.UpdatePayoutStatusCommand{})
	require.ErrorIs(t, err, commands.ErrUpdatePayoutStatusCommandIsNotConstructed)

	err = commands.NewRegisterUserCommandHandler(nil).Handle(ctx, commands.RegisterUserCommand{})
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}
