package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemID is the stable identity of a menu item. It never changes when the
// item is renamed, so inventory is keyed by it.
type ItemID string

// NewItemID returns a fresh random item identity.
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

var ErrNegativePrice = errors.New("price must not be negative")

// Kind is the variant part of a menu item: Food or Drink.
type Kind interface {
	kind() string
}

// Food is a menu item variant tagged with its cuisine.
type Food struct {
	CuisineType string
}

// Drink is a menu item variant tagged with its beverage category.
type Drink struct {
	BeverageType string
}

func (Food) kind() string  { return "food" }
func (Drink) kind() string { return "drink" }

// MenuItem is a sellable item on a restaurant menu.
type MenuItem struct {
	ID          ItemID
	Name        string
	Price       decimal.Decimal
	Description string
	Kind        Kind
}

// NewMenuItem builds a menu item with a fresh ID.
func NewMenuItem(name string, price decimal.Decimal, description string, kind Kind) (*MenuItem, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("menu item %q: %w", name, ErrNegativePrice)
	}
	if kind == nil {
		return nil, fmt.Errorf("menu item %q: kind is required", name)
	}
	return &MenuItem{
		ID:          NewItemID(),
		Name:        name,
		Price:       price,
		Description: description,
		Kind:        kind,
	}, nil
}

// NewFood is shorthand for a Food menu item.
func NewFood(name string, price decimal.Decimal, description, cuisineType string) (*MenuItem, error) {
	return NewMenuItem(name, price, description, Food{CuisineType: cuisineType})
}

// NewDrink is shorthand for a Drink menu item.
func NewDrink(name string, price decimal.Decimal, description, beverageType string) (*MenuItem, error) {
	return NewMenuItem(name, price, description, Drink{BeverageType: beverageType})
}

// SetPrice changes the price, keeping it non-negative.
func (m *MenuItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("menu item %q: %w", m.Name, ErrNegativePrice)
	}
	m.Price = price
	return nil
}

// MatchesName reports whether name refers to this item, ignoring case.
func (m *MenuItem) MatchesName(name string) bool {
	return strings.EqualFold(m.Name, strings.TrimSpace(name))
}

// KindName returns "food" or "drink".
func (m *MenuItem) KindName() string {
	if m.Kind == nil {
		return ""
	}
	return m.Kind.kind()
}

// DetailLabel names the variant-specific field.
func (m *MenuItem) DetailLabel() string {
	switch m.Kind.(type) {
	case Food:
		return "Cuisine Type"
	case Drink:
		return "Beverage Type"
	default:
		return ""
	}
}

// Detail returns the variant-specific value (cuisine or beverage type).
func (m *MenuItem) Detail() string {
	switch k := m.Kind.(type) {
	case Food:
		return k.CuisineType
	case Drink:
		return k.BeverageType
	default:
		return ""
	}
}

// SetDetail replaces the variant-specific value, keeping the variant.
func (m *MenuItem) SetDetail(value string) {
	switch m.Kind.(type) {
	case Food:
		m.Kind = Food{CuisineType: value}
	case Drink:
		m.Kind = Drink{BeverageType: value}
	}
}
