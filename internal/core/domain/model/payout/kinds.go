package payout

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Type of settlement batch.
type Type int

const (
	UnknownType Type = iota
	CourierSettlement
	MerchantPayout
	WarehouseSettlement
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:         "UNKNOWN",
		CourierSettlement:   "COURIER_SETTLEMENT",
		MerchantPayout:      "MERCHANT_PAYOUT",
		WarehouseSettlement: "WAREHOUSE_SETTLEMENT",
	}
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

func (t Type) Validate() error {
	if t < CourierSettlement || t > WarehouseSettlement {
		return errs.NewValueIsInvalidErrorWithCause("payout type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// Status of a payout.
//
//	Pending ──┬──> Processing ──┬──> Paid
//	          │        ^        └──> Failed ──┬──> Processing
//	          ├──> Paid                       └──> Cancelled
//	          └──> Cancelled
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Processing
	Paid
	Failed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		Processing:    "PROCESSING",
		Paid:          "PAID",
		Failed:        "FAILED",
		Cancelled:     "CANCELLED",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("payout status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps the wire name of a payout status.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != UnknownStatus && str == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("payout status", fmt.Errorf("%q is not a valid status", name))
}

// IsFinal reports whether no further transition is allowed.
func (s Status) IsFinal() bool {
	return s == Paid || s == Cancelled
}

func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	allowed := false
	switch s {
	case Pending:
		allowed = target == Processing || target == Paid || target == Cancelled
	case Processing:
		allowed = target == Paid || target == Failed
	case Failed:
		allowed = target == Processing || target == Cancelled
	case UnknownStatus, Paid, Cancelled:
	}
	if !allowed {
		return s, errs.NewConflictError("payout status", fmt.Errorf("cannot move from %s to %s", s, target))
	}
	return target, nil
}
