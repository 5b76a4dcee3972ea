package restaurant

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

// OrderLine is a cart line frozen at checkout time.
type OrderLine struct {
	ItemID    models.ItemID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total is unit price times quantity.
func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable record of a committed checkout. Only
// Restaurant.ProcessOrder creates one.
type Order struct {
	number       string
	customerID   string
	restaurantID string
	restaurant   string
	lines        []OrderLine
	offers       []models.SpecialOffer
	subtotal     decimal.Decimal
	totalCost    decimal.Decimal
	status       models.OrderStatus
	placedAt     time.Time
}

func (o *Order) Number() string             { return o.number }
func (o *Order) CustomerID() string         { return o.customerID }
func (o *Order) RestaurantID() string       { return o.restaurantID }
func (o *Order) RestaurantName() string     { return o.restaurant }
func (o *Order) Subtotal() decimal.Decimal  { return o.subtotal }
func (o *Order) TotalCost() decimal.Decimal { return o.totalCost }
func (o *Order) Status() models.OrderStatus { return o.status }
func (o *Order) PlacedAt() time.Time        { return o.placedAt }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Offers returns a copy of the offers that were applied.
func (o *Order) Offers() []models.SpecialOffer {
	out := make([]models.SpecialOffer, len(o.offers))
	copy(out, o.offers)
	return out
}

// Discount is subtotal minus total cost.
func (o *Order) Discount() decimal.Decimal {
	return o.subtotal.Sub(o.totalCost)
}

// Confirm is a hook invoked once the order is committed. It does nothing.
func (o *Order) Confirm() {}
