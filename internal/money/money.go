package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount expressed in minor currency units.
type Cents int64

var centsPerUnit = decimal.NewFromInt(100)

// Parse converts a currency string such as "$15.05" or "2.15" into Cents.
// The leading dollar sign is optional. Amounts must be positive and must not
// carry fractions of a cent.
func Parse(raw string) (Cents, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}

	cents := value.Mul(centsPerUnit)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has fractions of a cent", raw)
	}

	total := cents.IntPart()
	if total <= 0 {
		return 0, fmt.Errorf("amount %q must be positive", raw)
	}

	return Cents(total), nil
}

// String renders the amount as a dollar string, e.g. 1505 -> "$15.05".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
