package manifest

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Status of a manifest.
//
//	Created ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	Unknown Status = iota
	Created
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if s < Created || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("manifest status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps the wire name of a manifest status.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("manifest status", fmt.Errorf("%q is not a valid status", name))
}

func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo returns target when the move is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	allowed := false
	switch s {
	case Created:
		allowed = target == InProgress || target == Cancelled
	case InProgress:
		allowed = target == Completed || target == Cancelled
	case Unknown, Completed, Cancelled:
		allowed = false
	}
	if !allowed {
		return s, errs.NewConflictError("manifest status", fmt.Errorf("cannot move from %s to %s", s, target))
	}
	return target, nil
}
