package commands

import (
	"errors"
	"strings"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrReceiveAtHubCommandIsNotConstructed = errors.New(
	"ReceiveAtHubCommand must be created via NewReceiveAtHubCommand constructor",
)

// ReceiveAtHubCommand lists the tracking numbers scanned in at the hub.
type ReceiveAtHubCommand struct {
	trackingNumbers []string

	guard guard.ConstructorGuard
}

func NewReceiveAtHubCommand(trackingNumbers []string) (ReceiveAtHubCommand, error) {
	cleaned := make([]string, 0, len(trackingNumbers))
	for _, n := range trackingNumbers {
		cleaned = append(cleaned, strings.TrimSpace(n))
	}
	if len(cleaned) == 0 {
		return ReceiveAtHubCommand{}, errs.NewValueIsRequiredError("tracking numbers")
	}
	return ReceiveAtHubCommand{trackingNumbers: cleaned, guard: guard.NewConstructorGuard()}, nil
}

func (c ReceiveAtHubCommand) Validate() error {
	return c.guard.Validate(ErrReceiveAtHubCommandIsNotConstructed)
}

func (c ReceiveAtHubCommand) TrackingNumbers() []string {
	out := make([]string, len(c.trackingNumbers))
	copy(out, c.trackingNumbers)
	return out
}
