package status

import (
	"errors"
	"fmt"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")

// Name is the unique, case-sensitive name of a shipment status.
type Name string

// Canonical vocabulary, in lifecycle order.
const (
	Pending            Name = "PENDING"
	PendingApproval    Name = "PENDING_APPROVAL"
	Approved           Name = "APPROVED"
	PickedUp           Name = "PICKED_UP"
	ReceivedAtHub      Name = "RECEIVED_AT_HUB"
	ReadyForDispatch   Name = "READY_FOR_DISPATCH"
	AssignedToCourier  Name = "ASSIGNED_TO_COURIER"
	InTransit          Name = "IN_TRANSIT"
	OutForDelivery     Name = "OUT_FOR_DELIVERY"
	Delivered          Name = "DELIVERED"
	PartiallyDelivered Name = "PARTIALLY_DELIVERED"
	FailedDelivery     Name = "FAILED_DELIVERY"
	FailedAttempt      Name = "FAILED_ATTEMPT"
	Postponed          Name = "POSTPONED"
	PendingUpdate      Name = "PENDING_UPDATE"
	PendingReturn      Name = "PENDING_RETURN"
	ReturnedToHub      Name = "RETURNED_TO_HUB"
	ReturnedToOrigin   Name = "RETURNED_TO_ORIGIN"
	Cancelled          Name = "CANCELLED"
	OnHold             Name = "ON_HOLD"
	Rescheduled        Name = "RESCHEDULED"
)

// CanonicalNames returns the seeded vocabulary in its canonical order.
func CanonicalNames() []Name {
	return []Name{
		Pending, PendingApproval, Approved, PickedUp, ReceivedAtHub, ReadyForDispatch,
		AssignedToCourier, InTransit, OutForDelivery, Delivered, PartiallyDelivered,
		FailedDelivery, FailedAttempt, Postponed, PendingUpdate, PendingReturn,
		ReturnedToHub, ReturnedToOrigin, Cancelled, OnHold, Rescheduled,
	}
}

// IsTerminal reports whether no transition may leave a shipment in this status.
func (n Name) IsTerminal() bool {
	return n == Delivered || n == Cancelled || n == ReturnedToOrigin
}

// Validate rejects empty names and names with surrounding whitespace.
func (n Name) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("status name")
	}
	if strings.TrimSpace(string(n)) != string(n) {
		return errs.NewValueIsInvalidErrorWithCause("status name", fmt.Errorf("%q has surrounding whitespace", n))
	}
	return nil
}

func (n Name) String() string {
	return string(n)
}

// Status is a persisted entry of the registry.
type Status struct {
	id            kernel.UUID
	name          Name
	position      int
	isConstructed bool
}

// NewStatus creates a status entry. Position orders the registry listing.
func NewStatus(id kernel.UUID, name Name, position int) (Status, error) {
	if err := errors.Join(id.Validate(), name.Validate()); err != nil {
		return Status{}, err
	}
	if position < 0 {
		return Status{}, errs.NewValueIsOutOfRangeError("position", position, 0, "unbounded")
	}
	return Status{id: id, name: name, position: position, isConstructed: true}, nil
}

func (s Status) Validate() error {
	if !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

func (s Status) ID() kernel.UUID {
	return s.id
}

func (s Status) Name() Name {
	return s.name
}

func (s Status) Position() int {
	return s.position
}

func (s Status) IsTerminal() bool {
	return s.name.IsTerminal()
}

// Is compares by name, which is what workflow rules are written against.
func (s Status) Is(name Name) bool {
	return s.name == name
}

// Renamed returns a copy of s carrying newName.
func (s Status) Renamed(newName Name) (Status, error) {
	if err := newName.Validate(); err != nil {
		return Status{}, err
	}
	s.name = newName
	return s, nil
}
