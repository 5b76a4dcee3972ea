// Package inventory tracks per-item stock counts for one restaurant.
package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

var ErrNegativeStock = errors.New("stock cannot go negative")

// NegativeStockError is returned when an adjustment would drive stock below
// zero. Stock is left unchanged.
type NegativeStockError struct {
	ItemID  models.ItemID
	Current int
	Delta   int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("item %s: adjusting stock %d by %d would go negative", e.ItemID, e.Current, e.Delta)
}

func (e *NegativeStockError) Unwrap() error {
	return ErrNegativeStock
}

// Inventory maps item identity to remaining stock. It is not safe for
// concurrent use; the owning restaurant serialises access.
type Inventory struct {
	stock map[models.ItemID]int
}

func New() *Inventory {
	return &Inventory{stock: make(map[models.ItemID]int)}
}

// Adjust adds delta to the item's stock, rejecting results below zero.
func (inv *Inventory) Adjust(id models.ItemID, delta int) error {
	current := inv.stock[id]
	next := current + delta
	if next < 0 {
		return &NegativeStockError{ItemID: id, Current: current, Delta: delta}
	}
	inv.stock[id] = next
	return nil
}

// Available returns current stock, 0 for unknown items.
func (inv *Inventory) Available(id models.ItemID) int {
	return inv.stock[id]
}

// Remove forgets the item entirely.
func (inv *Inventory) Remove(id models.ItemID) {
	delete(inv.stock, id)
}

// LowStock returns tracked items whose stock is at or below threshold,
// sorted by id.
func (inv *Inventory) LowStock(threshold int) []models.ItemID {
	var low []models.ItemID
	for id, n := range inv.stock {
		if n <= threshold {
			low = append(low, id)
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i] < low[j] })
	return low
}
