package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

func mustFood(t *testing.T, name, price string) *models.MenuItem {
	t.Helper()
	item, err := models.NewFood(name, decimal.RequireFromString(price), "", "Test")
	require.NoError(t, err)
	return item
}

func TestSubtotal(t *testing.T) {
	burger := mustFood(t, "Burger", "8.99")
	cola := mustFood(t, "Cola", "2.49")

	c := New()
	assert.True(t, c.Subtotal().IsZero())

	c.AddLine(burger, 2)
	c.AddLine(cola, 3)

	want := "25.45" // 2*8.99 + 3*2.49
	assert.Equal(t, want, c.Subtotal().StringFixed(2))
	assert.Equal(t, want, c.Subtotal().StringFixed(2), "repeated calls must agree")
	assert.Equal(t, 2, c.Len())
}

func TestSubtotal_ReflectsPriceEdits(t *testing.T) {
	burger := mustFood(t, "Burger", "10.00")
	c := New()
	c.AddLine(burger, 2)
	assert.Equal(t, "20.00", c.Subtotal().StringFixed(2))

	require.NoError(t, burger.SetPrice(decimal.RequireFromString("12.50")))
	assert.Equal(t, "25.00", c.Subtotal().StringFixed(2))
}

func TestAddLine_DoesNotMerge(t *testing.T) {
	burger := mustFood(t, "Burger", "5")
	c := New()
	c.AddLine(burger, 1)
	c.AddLine(burger, 2)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestRemoveLine_FirstMatchOnly(t *testing.T) {
	burger := mustFood(t, "Burger", "5")
	cola := mustFood(t, "Cola", "2")
	c := New()
	c.AddLine(burger, 1)
	c.AddLine(cola, 1)
	c.AddLine(burger, 1)

	assert.True(t, c.RemoveLine(CartItem{Item: burger, Quantity: 1}))
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Same(t, cola, lines[0].Item)
	assert.Same(t, burger, lines[1].Item)

	assert.False(t, c.RemoveLine(CartItem{Item: cola, Quantity: 9}))
	assert.Equal(t, 2, c.Len())
}

func TestLines_ReturnsCopy(t *testing.T) {
	burger := mustFood(t, "Burger", "5")
	c := New()
	c.AddLine(burger, 1)

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, "5.00", c.Subtotal().StringFixed(2))
}

func TestSummary(t *testing.T) {
	burger := mustFood(t, "Burger", "5")
	cola := mustFood(t, "Cola", "2")
	c := New()
	c.AddLine(burger, 1)
	c.AddLine(cola, 2)
	c.AddLine(burger, 3)

	summary := c.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, "Burger", summary[0].Name)
	assert.Equal(t, 4, summary[0].Quantity)
	assert.Equal(t, "20.00", summary[0].Total.StringFixed(2))
	assert.Equal(t, "Cola", summary[1].Name)
	assert.Equal(t, "4.00", summary[1].Total.StringFixed(2))
}

func TestReset(t *testing.T) {
	c := New()
	c.AddLine(mustFood(t, "Burger", "5"), 1)
	c.Reset()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
}
