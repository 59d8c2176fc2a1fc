package shipment

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// SourceType tells how a shipment entered the system.
type SourceType int

const (
	UnknownSource SourceType = iota
	SourceMerchant
	SourceImport
)

func (t SourceType) String() string {
	switch t {
	case SourceMerchant:
		return "MERCHANT"
	case SourceImport:
		return "IMPORT"
	case UnknownSource:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

func (t SourceType) Validate() error {
	if t != SourceMerchant && t != SourceImport {
		return errs.NewValueIsInvalidErrorWithCause("source type", fmt.Errorf("%d is not a valid source type", t))
	}
	return nil
}

func ParseSourceType(s string) (SourceType, error) {
	switch s {
	case "MERCHANT":
		return SourceMerchant, nil
	case "IMPORT":
		return SourceImport, nil
	default:
		return UnknownSource, errs.NewValueIsInvalidErrorWithCause("source type", fmt.Errorf("%q is not a valid source type", s))
	}
}

// FeePayer is the party charged the delivery fee.
type FeePayer int

const (
	UnknownPayer FeePayer = iota
	PaidByMerchant
	PaidByRecipient
)

func (p FeePayer) String() string {
	switch p {
	case PaidByMerchant:
		return "MERCHANT"
	case PaidByRecipient:
		return "RECIPIENT"
	case UnknownPayer:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

func (p FeePayer) Validate() error {
	if p != PaidByMerchant && p != PaidByRecipient {
		return errs.NewValueIsInvalidErrorWithCause("shipping fee paid by", fmt.Errorf("%d is not a valid payer", p))
	}
	return nil
}

func ParseFeePayer(s string) (FeePayer, error) {
	switch s {
	case "MERCHANT":
		return PaidByMerchant, nil
	case "RECIPIENT":
		return PaidByRecipient, nil
	default:
		return UnknownPayer, errs.NewValueIsInvalidErrorWithCause("shipping fee paid by", fmt.Errorf("%q is not a valid payer", s))
	}
}
