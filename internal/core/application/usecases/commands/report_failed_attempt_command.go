package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrReportFailedAttemptCommandIsNotConstructed = errors.New(
	"ReportFailedAttemptCommand must be created via NewReportFailedAttemptCommand constructor",
)

// ReportFailedAttemptCommand carries the courier's free-text reason for a
// failed delivery. The target status is derived from the reason.
type ReportFailedAttemptCommand struct {
	shipmentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewReportFailedAttemptCommand(shipmentID kernel.UUID, reason string) (ReportFailedAttemptCommand, error) {
	reason = strings.TrimSpace(reason)
	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(shipmentID.Validate(), reasonErr); err != nil {
		return ReportFailedAttemptCommand{}, err
	}
	return ReportFailedAttemptCommand{shipmentID: shipmentID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c ReportFailedAttemptCommand) Validate() error {
	return c.guard.Validate(ErrReportFailedAttemptCommandIsNotConstructed)
}

func (c ReportFailedAttemptCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c ReportFailedAttemptCommand) Reason() string          { return c.reason }
