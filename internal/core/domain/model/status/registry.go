package status

import (
	"errors"
	"fmt"

	"courierhub/internal/pkg/errs"
)

// workflowNames are looked up by name from workflow code. Renaming or deleting
// them breaks the lifecycle, so the registry protects them.
var workflowNames = []Name{
	ReceivedAtHub, AssignedToCourier, ReturnedToHub, Delivered, Cancelled,
	ReturnedToOrigin, Postponed, PendingUpdate, PendingReturn,
}

// IsRequiredByWorkflow reports whether workflow logic looks the name up directly.
func IsRequiredByWorkflow(name Name) bool {
	if name == Pending || name == PendingApproval {
		return true
	}
	for _, n := range workflowNames {
		if n == name {
			return true
		}
	}
	return false
}

// Registry is an in-memory, name-indexed view of the persisted statuses.
type Registry struct {
	ordered []Status
	byName  map[Name]Status
}

// NewRegistry indexes statuses by name. Duplicate names are a conflict.
func NewRegistry(statuses []Status) (*Registry, error) {
	r := &Registry{
		ordered: make([]Status, 0, len(statuses)),
		byName:  make(map[Name]Status, len(statuses)),
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[s.Name()]; dup {
			return nil, errs.NewConflictError("status name", fmt.Errorf("%s is registered twice", s.Name()))
		}
		r.byName[s.Name()] = s
		r.ordered = append(r.ordered, s)
	}
	return r, nil
}

// Lookup finds a status by exact, case-sensitive name.
func (r *Registry) Lookup(name Name) (Status, error) {
	s, ok := r.byName[name]
	if !ok {
		return Status{}, errs.NewObjectNotFoundError("status", name)
	}
	return s, nil
}

func (r *Registry) Exists(name Name) bool {
	_, ok := r.byName[name]
	return ok
}

// Initial is the status given to new shipments: PENDING_APPROVAL, falling
// back to PENDING.
func (r *Registry) Initial() (Status, error) {
	if s, ok := r.byName[PendingApproval]; ok {
		return s, nil
	}
	if s, ok := r.byName[Pending]; ok {
		return s, nil
	}
	return Status{}, errs.NewObjectNotFoundError("status", PendingApproval)
}

// All returns the statuses in registry order.
func (r *Registry) All() []Status {
	out := make([]Status, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Require returns a joined NotFound error for every missing name.
func (r *Registry) Require(names ...Name) error {
	var missing []error
	for _, n := range names {
		if !r.Exists(n) {
			missing = append(missing, errs.NewObjectNotFoundError("status", n))
		}
	}
	return errors.Join(missing...)
}

// RequireWorkflow checks every status the lifecycle, warehouse, return and
// payout flows look up by name. Callers treat a failure at startup as fatal.
func (r *Registry) RequireWorkflow() error {
	err := r.Require(workflowNames...)
	if _, initErr := r.Initial(); initErr != nil {
		err = errors.Join(err, initErr)
	}
	return err
}
