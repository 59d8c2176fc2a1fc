package user

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Role is the closed set of actor roles the core makes decisions on.
type Role int

const (
	UnknownRole Role = iota
	Courier
	Merchant
	WarehouseManager
	Admin
)

func (r Role) String() string {
	switch r {
	case Courier:
		return "COURIER"
	case Merchant:
		return "MERCHANT"
	case WarehouseManager:
		return "WAREHOUSE_MANAGER"
	case Admin:
		return "ADMIN"
	case UnknownRole:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

func (r Role) Validate() error {
	switch r {
	case Courier, Merchant, WarehouseManager, Admin:
		return nil
	case UnknownRole:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

// ParseRole maps the wire name of a role. Matching is exact.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{Courier, Merchant, WarehouseManager, Admin} {
		if r.String() == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
