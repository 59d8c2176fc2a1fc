package kernel

import (
	"fmt"

	"courierhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money is an exact currency amount with two decimal places.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is 0.00.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney rounds d half away from zero to two places.
func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyPlaces)}
}

// MoneyFromString parses an exact decimal such as "50.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(d), nil
}

// MustMoney parses s and panics on malformed input. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewNonNegativeMoney rejects negative amounts.
func NewNonNegativeMoney(paramName string, d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", d.String()))
	}
	return NewMoney(d), nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Mul multiplies by a ratio (e.g. a courier share or a priority multiplier)
// and rounds the product to two places.
func (m Money) Mul(ratio decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(ratio))
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String renders the amount with exactly two decimals, e.g. "420.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}
