package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Priority selects the multiplier applied to a zone's default fee.
type Priority int

const (
	Standard Priority = iota
	Express
	Economy
)

// ParsePriority is case-insensitive. Unknown or empty values mean Standard.
func ParsePriority(s string) Priority {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EXPRESS":
		return Express
	case "ECONOMY":
		return Economy
	default:
		return Standard
	}
}

func (p Priority) String() string {
	switch p {
	case Express:
		return "EXPRESS"
	case Economy:
		return "ECONOMY"
	case Standard:
		return "STANDARD"
	default:
		return "STANDARD"
	}
}

// Multiplier is exact: 1.5, 1.0 or 0.8.
func (p Priority) Multiplier() decimal.Decimal {
	switch p {
	case Express:
		return decimal.RequireFromString("1.5")
	case Economy:
		return decimal.RequireFromString("0.8")
	case Standard:
		return decimal.NewFromInt(1)
	default:
		return decimal.NewFromInt(1)
	}
}
