package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals after the currency symbol.
func FormatMoney(currency string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s%s", currency, amount.StringFixed(2))
}

// ParseMoney parses a user supplied amount such as "9.90".
func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
