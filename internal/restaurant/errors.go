package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInventoryCorruption = errors.New("inventory corruption")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrItemNotFound        = errors.New("menu item not found")
	ErrDuplicateItemName   = errors.New("menu item name already in use")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)

// Shortage describes one item that failed the admission check.
type Shortage struct {
	ItemID    models.ItemID
	Name      string
	Requested int
	Available int
}

// InsufficientStockError is returned when an order fails the admission
// check. No stock was changed.
type InsufficientStockError struct {
	Restaurant string
	Shortages  []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", s.Name, s.Requested, s.Available))
	}
	return fmt.Sprintf("%s: insufficient stock for %s", e.Restaurant, strings.Join(parts, ", "))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InventoryCorruptionError means a commit-phase deduction failed after the
// admission check passed. Some lines may already have been deducted.
type InventoryCorruptionError struct {
	Restaurant string
	ItemID     models.ItemID
	Err        error
}

func (e *InventoryCorruptionError) Error() string {
	return fmt.Sprintf("%s: inventory corruption committing item %s: %v", e.Restaurant, e.ItemID, e.Err)
}

func (e *InventoryCorruptionError) Unwrap() []error {
	return []error{ErrInventoryCorruption, e.Err}
}
