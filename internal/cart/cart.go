// Package cart holds the lines a customer is about to order.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

// CartItem is one line: an item and how many of it.
type CartItem struct {
	Item     *models.MenuItem
	Quantity int
}

// LineTotal is the item's current price times quantity.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Item.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// SummaryLine aggregates every cart line for one item name.
type SummaryLine struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// Cart is an ordered list of lines. Lines for the same item are kept apart.
type Cart struct {
	items []CartItem
}

func New() *Cart {
	return &Cart{}
}

// AddLine appends a line. Stock is not checked here.
func (c *Cart) AddLine(item *models.MenuItem, quantity int) {
	c.items = append(c.items, CartItem{Item: item, Quantity: quantity})
}

// RemoveLine removes the first line equal to line and reports whether one
// was found.
func (c *Cart) RemoveLine(line CartItem) bool {
	for i, ci := range c.items {
		if ci == line {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Reset empties the cart for a new order.
func (c *Cart) Reset() {
	c.items = nil
}

// Subtotal sums price*quantity over all lines using current prices.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, ci := range c.items {
		total = total.Add(ci.LineTotal())
	}
	return total
}

// Summary groups lines by item name in first-seen order.
func (c *Cart) Summary() []SummaryLine {
	var out []SummaryLine
	index := make(map[string]int)
	for _, ci := range c.items {
		i, ok := index[ci.Item.Name]
		if !ok {
			index[ci.Item.Name] = len(out)
			out = append(out, SummaryLine{Name: ci.Item.Name, Total: decimal.Zero})
			i = len(out) - 1
		}
		out[i].Quantity += ci.Quantity
		out[i].Total = out[i].Total.Add(ci.LineTotal())
	}
	return out
}
