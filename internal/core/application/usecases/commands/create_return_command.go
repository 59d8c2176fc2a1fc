package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrCreateReturnCommandIsNotConstructed = errors.New(
	"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
)

// CreateReturnCommand starts a return to origin for an undeliverable shipment.
type CreateReturnCommand struct {
	shipmentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewCreateReturnCommand(shipmentID kernel.UUID, reason string) (CreateReturnCommand, error) {
	reason = strings.TrimSpace(reason)
	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(shipmentID.Validate(), reasonErr); err != nil {
		return CreateReturnCommand{}, err
	}
	return CreateReturnCommand{shipmentID: shipmentID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

func (c CreateReturnCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c CreateReturnCommand) Reason() string          { return c.reason }
