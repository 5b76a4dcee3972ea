package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrDiscountOutOfRange = errors.New("discount must be between 0 and 100 percent")

var hundred = decimal.NewFromInt(100)

// SpecialOffer is a named percentage discount.
type SpecialOffer struct {
	Description string
	Discount    decimal.Decimal // percent, e.g. 10 for 10%
}

// NewSpecialOffer rejects discounts outside [0, 100] so Apply can never
// produce a negative amount.
func NewSpecialOffer(description string, discount decimal.Decimal) (SpecialOffer, error) {
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return SpecialOffer{}, fmt.Errorf("offer %q: %w", description, ErrDiscountOutOfRange)
	}
	return SpecialOffer{Description: description, Discount: discount}, nil
}

// Apply returns amount * (1 - discount/100).
func (o SpecialOffer) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(o.Discount).Div(hundred))
}

// ApplyAll applies offers in list order, each to the already discounted
// running total.
func ApplyAll(amount decimal.Decimal, offers []SpecialOffer) decimal.Decimal {
	total := amount
	for _, o := range offers {
		total = o.Apply(total)
	}
	return total
}
