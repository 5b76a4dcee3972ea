// Package restaurant owns menus, offers and stock, and turns carts into
// committed orders.
package restaurant

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/cart"
	"github.com/brandon-nx/Food-Ordering-System/internal/inventory"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

// OrderRequest is the input to ProcessOrder.
type OrderRequest struct {
	// Number labels the order; a random id is used when empty.
	Number     string
	CustomerID string
	Cart       *cart.Cart
}

// stockKeeper is the part of *inventory.Inventory a restaurant uses.
type stockKeeper interface {
	Adjust(id models.ItemID, delta int) error
	Available(id models.ItemID) int
	Remove(id models.ItemID)
}

// Restaurant owns a menu, its special offers and an inventory. mu guards
// the inventory so the admission check and the commit form one critical
// section.
type Restaurant struct {
	mu        sync.Mutex
	id        string
	name      string
	menu      []*models.MenuItem
	offers    []models.SpecialOffer
	inventory stockKeeper
	now       func() time.Time
}

func New(name string) *Restaurant {
	return &Restaurant{
		id:        uuid.NewString(),
		name:      name,
		inventory: inventory.New(),
		now:       time.Now,
	}
}

func (r *Restaurant) ID() string {
	return r.id
}

func (r *Restaurant) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

func (r *Restaurant) Rename(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name = name
}

// Menu returns the menu items in order. The items themselves are shared,
// so edits through the returned pointers change the menu.
func (r *Restaurant) Menu() []*models.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.MenuItem, len(r.menu))
	copy(out, r.menu)
	return out
}

// AddToMenu appends item and seeds its stock.
func (r *Restaurant) AddToMenu(item *models.MenuItem, initialStock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.inventory.Adjust(item.ID, initialStock); err != nil {
		return fmt.Errorf("add %q to menu: %w", item.Name, err)
	}
	r.menu = append(r.menu, item)
	return nil
}

// RemoveMenuItem removes the first item whose name matches, ignoring case,
// and drops its stock. It reports whether an item was removed.
func (r *Restaurant) RemoveMenuItem(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.menu {
		if item.MatchesName(name) {
			r.menu = append(r.menu[:i], r.menu[i+1:]...)
			r.inventory.Remove(item.ID)
			return true
		}
	}
	return false
}

// FindMenuItem returns the first item whose name matches, ignoring case.
func (r *Restaurant) FindMenuItem(name string) (*models.MenuItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(name)
}

func (r *Restaurant) findLocked(name string) (*models.MenuItem, bool) {
	for _, item := range r.menu {
		if item.MatchesName(name) {
			return item, true
		}
	}
	return nil, false
}

func (r *Restaurant) itemLocked(id models.ItemID) *models.MenuItem {
	for _, item := range r.menu {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// UpdateMenuItemPrice sets the price of the item matching name.
func (r *Restaurant) UpdateMenuItemPrice(name string, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.findLocked(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	return item.SetPrice(price)
}

// UpdateMenuItem applies edit to the item with the given id while holding
// the restaurant lock, so edits never interleave with a checkout. A rename
// onto another item's name is undone and reported as ErrDuplicateItemName.
func (r *Restaurant) UpdateMenuItem(id models.ItemID, edit func(item *models.MenuItem) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.itemLocked(id)
	if item == nil {
		return fmt.Errorf("item %s: %w", id, ErrItemNotFound)
	}

	oldName := item.Name
	if err := edit(item); err != nil {
		return err
	}
	if item.Name != oldName {
		for _, other := range r.menu {
			if other.ID != id && other.MatchesName(item.Name) {
				name := item.Name
				item.Name = oldName
				return fmt.Errorf("%q: %w", name, ErrDuplicateItemName)
			}
		}
	}
	return nil
}

// AddSpecialOffer appends an offer. Offers apply in the order added.
func (r *Restaurant) AddSpecialOffer(offer models.SpecialOffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, offer)
}

// Offers returns a copy of the active offers.
func (r *Restaurant) Offers() []models.SpecialOffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SpecialOffer, len(r.offers))
	copy(out, r.offers)
	return out
}

// Available returns the stock of an item.
func (r *Restaurant) Available(id models.ItemID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory.Available(id)
}

// IsItemAvailable reports whether quantity units are in stock.
func (r *Restaurant) IsItemAvailable(id models.ItemID, quantity int) bool {
	return r.Available(id) >= quantity
}

// Restock adds quantity units of an item on the menu.
func (r *Restaurant) Restock(id models.ItemID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.itemLocked(id) == nil {
		return fmt.Errorf("item %s: %w", id, ErrItemNotFound)
	}
	return r.inventory.Adjust(id, quantity)
}

// LowStockItems returns menu items whose stock is at or below threshold,
// in menu order.
func (r *Restaurant) LowStockItems(threshold int) []*models.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.MenuItem
	for _, item := range r.menu {
		if r.inventory.Available(item.ID) <= threshold {
			out = append(out, item)
		}
	}
	return out
}

// ProcessOrder turns a cart into a committed order.
//
// Stock for every line is checked before any is deducted; if any line is
// short the call returns *InsufficientStockError and neither the inventory
// nor the cart is changed. Offers are those active at this moment, applied
// in list order to the subtotal.
func (r *Restaurant) ProcessOrder(req OrderRequest) (*Order, error) {
	if req.Cart == nil || req.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	for _, ci := range req.Cart.Lines() {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("%s x%d: %w", ci.Item.Name, ci.Quantity, ErrInvalidQuantity)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order := r.draftLocked(req)

	if shortages := r.admitLocked(order.lines); len(shortages) > 0 {
		order.status = models.StatusRejected
		return nil, &InsufficientStockError{Restaurant: r.name, Shortages: shortages}
	}
	order.status = models.StatusValidated

	for _, line := range order.lines {
		if err := r.inventory.Adjust(line.ItemID, -line.Quantity); err != nil {
			return nil, &InventoryCorruptionError{Restaurant: r.name, ItemID: line.ItemID, Err: err}
		}
	}

	order.totalCost = models.ApplyAll(order.subtotal, order.offers)
	order.status = models.StatusCommitted
	order.Confirm()
	return order, nil
}

func (r *Restaurant) draftLocked(req OrderRequest) *Order {
	number := req.Number
	if number == "" {
		number = uuid.NewString()
	}

	cartLines := req.Cart.Lines()
	lines := make([]OrderLine, 0, len(cartLines))
	subtotal := decimal.Zero
	for _, ci := range cartLines {
		line := OrderLine{
			ItemID:    ci.Item.ID,
			Name:      ci.Item.Name,
			UnitPrice: ci.Item.Price,
			Quantity:  ci.Quantity,
		}
		lines = append(lines, line)
		subtotal = subtotal.Add(line.Total())
	}

	offers := make([]models.SpecialOffer, len(r.offers))
	copy(offers, r.offers)

	return &Order{
		number:       number,
		customerID:   req.CustomerID,
		restaurantID: r.id,
		restaurant:   r.name,
		lines:        lines,
		offers:       offers,
		subtotal:     subtotal,
		status:       models.StatusDraft,
		placedAt:     r.now().UTC(),
	}
}

// admitLocked checks every line against stock. Repeated lines for one item
// are summed so they cannot jointly overdraw it.
func (r *Restaurant) admitLocked(lines []OrderLine) []Shortage {
	requested := make(map[models.ItemID]int)
	var order []models.ItemID
	names := make(map[models.ItemID]string)
	for _, l := range lines {
		if _, seen := requested[l.ItemID]; !seen {
			order = append(order, l.ItemID)
			names[l.ItemID] = l.Name
		}
		requested[l.ItemID] += l.Quantity
	}

	var shortages []Shortage
	for _, id := range order {
		if avail := r.inventory.Available(id); avail < requested[id] {
			shortages = append(shortages, Shortage{
				ItemID:    id,
				Name:      names[id],
				Requested: requested[id],
				Available: avail,
			})
		}
	}
	return shortages
}
