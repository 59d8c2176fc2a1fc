package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand moves a shipment to an explicit target status.
// An empty note is replaced by a generic one.
type AdvanceShipmentCommand struct {
	shipmentID kernel.UUID
	target     status.Name
	note       string

	guard guard.ConstructorGuard
}

func NewAdvanceShipmentCommand(shipmentID kernel.UUID, target string, note string) (AdvanceShipmentCommand, error) {
	name := status.Name(strings.TrimSpace(target))
	if err := errors.Join(shipmentID.Validate(), name.Validate()); err != nil {
		return AdvanceShipmentCommand{}, err
	}
	return AdvanceShipmentCommand{
		shipmentID: shipmentID,
		target:     name,
		note:       strings.TrimSpace(note),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AdvanceShipmentCommand) Target() status.Name     { return c.target }
func (c AdvanceShipmentCommand) Note() string            { return c.note }
