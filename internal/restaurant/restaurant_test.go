package restaurant

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandon-nx/Food-Ordering-System/internal/cart"
	"github.com/brandon-nx/Food-Ordering-System/internal/inventory"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

func addFood(t *testing.T, r *Restaurant, name, price string, stock int) *models.MenuItem {
	t.Helper()
	item, err := models.NewFood(name, decimal.RequireFromString(price), name+" description", "Test")
	require.NoError(t, err)
	require.NoError(t, r.AddToMenu(item, stock))
	return item
}

func addOffer(t *testing.T, r *Restaurant, pct int64) {
	t.Helper()
	offer, err := models.NewSpecialOffer(fmt.Sprintf("%d%% off", pct), decimal.NewFromInt(pct))
	require.NoError(t, err)
	r.AddSpecialOffer(offer)
}

func TestProcessOrder_RejectionLeavesStockUntouched(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "5.00", 2)
	b := addFood(t, r, "B", "3.00", 0)

	c := cart.New()
	c.AddLine(a, 1)
	c.AddLine(b, 1)

	order, err := r.ProcessOrder(OrderRequest{CustomerID: "00042", Cart: c})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.False(t, errors.Is(err, ErrInventoryCorruption))

	var ise *InsufficientStockError
	require.True(t, errors.As(err, &ise))
	require.Len(t, ise.Shortages, 1)
	assert.Equal(t, b.ID, ise.Shortages[0].ItemID)
	assert.Equal(t, 1, ise.Shortages[0].Requested)
	assert.Equal(t, 0, ise.Shortages[0].Available)

	assert.Equal(t, 2, r.Available(a.ID))
	assert.Equal(t, 0, r.Available(b.ID))
	assert.Equal(t, 2, c.Len(), "cart must be preserved for retry")
}

func TestProcessOrder_CommitDeductsAndPrices(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "4.50", 5)

	c := cart.New()
	c.AddLine(a, 3)

	order, err := r.ProcessOrder(OrderRequest{Number: "ORD_20260101_001", CustomerID: "00042", Cart: c})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Available(a.ID))
	assert.Equal(t, "13.50", order.TotalCost().StringFixed(2))
	assert.Equal(t, "13.50", order.Subtotal().StringFixed(2))
	assert.True(t, order.Discount().IsZero())
	assert.Equal(t, models.StatusCommitted, order.Status())
	assert.Equal(t, "ORD_20260101_001", order.Number())
	assert.Equal(t, "00042", order.CustomerID())
	assert.Equal(t, "Yummy Restaurant", order.RestaurantName())
	assert.Equal(t, r.ID(), order.RestaurantID())
	assert.False(t, order.PlacedAt().IsZero())
}

func TestProcessOrder_AppliesOffersSequentially(t *testing.T) {
	r := New("Delicious Restaurant")
	a := addFood(t, r, "A", "10.00", 20)
	addOffer(t, r, 10)
	addOffer(t, r, 10)

	c := cart.New()
	c.AddLine(a, 10)

	order, err := r.ProcessOrder(OrderRequest{Cart: c})
	require.NoError(t, err)
	assert.Equal(t, "100.00", order.Subtotal().StringFixed(2))
	assert.Equal(t, "81.00", order.TotalCost().StringFixed(2))
	assert.Equal(t, "19.00", order.Discount().StringFixed(2))
	assert.Len(t, order.Offers(), 2)
	assert.NotEmpty(t, order.Number(), "a number is generated when none is supplied")
}

func TestProcessOrder_OffersCapturedAtCheckout(t *testing.T) {
	r := New("Delicious Restaurant")
	a := addFood(t, r, "A", "10.00", 20)

	c := cart.New()
	c.AddLine(a, 1)
	addOffer(t, r, 50)

	order, err := r.ProcessOrder(OrderRequest{Cart: c})
	require.NoError(t, err)
	assert.Equal(t, "5.00", order.TotalCost().StringFixed(2))

	addOffer(t, r, 50)
	assert.Len(t, order.Offers(), 1, "later offers must not leak into a committed order")
	assert.Equal(t, "5.00", order.TotalCost().StringFixed(2))
}

func TestProcessOrder_SnapshotIsImmutable(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "2.00", 10)

	c := cart.New()
	c.AddLine(a, 2)
	order, err := r.ProcessOrder(OrderRequest{Cart: c})
	require.NoError(t, err)

	require.NoError(t, a.SetPrice(decimal.NewFromInt(100)))
	a.Name = "Renamed"

	lines := order.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "2.00", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "4.00", order.TotalCost().StringFixed(2))

	lines[0].Quantity = 50
	assert.Equal(t, 2, order.Lines()[0].Quantity)
}

func TestProcessOrder_RepeatedLinesAreSummed(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "1.00", 3)

	c := cart.New()
	c.AddLine(a, 2)
	c.AddLine(a, 2)

	_, err := r.ProcessOrder(OrderRequest{Cart: c})
	var ise *InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 4, ise.Shortages[0].Requested)
	assert.Equal(t, 3, r.Available(a.ID))
}

func TestProcessOrder_InvalidInput(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "1.00", 3)

	_, err := r.ProcessOrder(OrderRequest{Cart: cart.New()})
	assert.True(t, errors.Is(err, ErrEmptyCart))

	_, err = r.ProcessOrder(OrderRequest{})
	assert.True(t, errors.Is(err, ErrEmptyCart))

	c := cart.New()
	c.AddLine(a, 0)
	_, err = r.ProcessOrder(OrderRequest{Cart: c})
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.Equal(t, 3, r.Available(a.ID))
}

func TestProcessOrder_ConcurrentCheckoutNeverOversells(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "1.00", 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		committed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := cart.New()
			c.AddLine(a, 1)
			if _, err := r.ProcessOrder(OrderRequest{Cart: c}); err == nil {
				mu.Lock()
				committed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, committed)
	assert.Equal(t, 0, r.Available(a.ID))
}

func TestMenuManagement(t *testing.T) {
	r := New("Yummy Restaurant")
	burger := addFood(t, r, "Cheese Burger", "9.90", 10)
	addFood(t, r, "Chicken Chop", "14.90", 10)

	found, ok := r.FindMenuItem("cheese BURGER")
	require.True(t, ok)
	assert.Same(t, burger, found)

	require.NoError(t, r.UpdateMenuItemPrice("cheese burger", decimal.RequireFromString("10.90")))
	assert.Equal(t, "10.90", burger.Price.StringFixed(2))
	assert.True(t, errors.Is(r.UpdateMenuItemPrice("pizza", decimal.NewFromInt(1)), ErrItemNotFound))
	assert.Error(t, r.UpdateMenuItemPrice("cheese burger", decimal.NewFromInt(-1)))

	assert.True(t, r.RemoveMenuItem("CHEESE burger"))
	assert.False(t, r.RemoveMenuItem("cheese burger"))
	assert.Len(t, r.Menu(), 1)
	assert.Equal(t, 0, r.Available(burger.ID))

	r.Rename("Yummier Restaurant")
	assert.Equal(t, "Yummier Restaurant", r.Name())
}

func TestAddToMenu_NegativeStockRejected(t *testing.T) {
	r := New("Yummy Restaurant")
	item, err := models.NewDrink("Cola", decimal.RequireFromString("2.90"), "", "Soft Drink")
	require.NoError(t, err)

	err = r.AddToMenu(item, -1)
	assert.Error(t, err)
	assert.Empty(t, r.Menu())
}

func TestRestock(t *testing.T) {
	r := New("Yummy Restaurant")
	cola := addFood(t, r, "Cola", "2.90", 1)

	require.NoError(t, r.Restock(cola.ID, 4))
	assert.Equal(t, 5, r.Available(cola.ID))
	assert.True(t, r.IsItemAvailable(cola.ID, 5))
	assert.False(t, r.IsItemAvailable(cola.ID, 6))

	assert.True(t, errors.Is(r.Restock(cola.ID, 0), ErrInvalidQuantity))
	assert.True(t, errors.Is(r.Restock(models.NewItemID(), 3), ErrItemNotFound))
}

func TestLowStockItems(t *testing.T) {
	r := New("Yummy Restaurant")
	addFood(t, r, "Burger", "9.90", 10)
	cola := addFood(t, r, "Cola", "2.90", 5)
	tea := addFood(t, r, "Tea", "2.90", 1)

	low := r.LowStockItems(5)
	require.Len(t, low, 2)
	assert.Same(t, cola, low[0])
	assert.Same(t, tea, low[1])
}

func TestInventoryCorruptionError(t *testing.T) {
	cause := errors.New("stock cannot go negative")
	err := error(&InventoryCorruptionError{Restaurant: "R", ItemID: "x", Err: cause})

	assert.True(t, errors.Is(err, ErrInventoryCorruption))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInsufficientStock))
	assert.Contains(t, err.Error(), "inventory corruption")
}

func TestUpdateMenuItem(t *testing.T) {
	r := New("Yummy Restaurant")
	cola := addFood(t, r, "Cola", "2.90", 5)

	require.NoError(t, r.UpdateMenuItem(cola.ID, func(item *models.MenuItem) error {
		item.Name = "Diet Cola"
		item.SetDetail("Zero Sugar")
		return nil
	}))
	assert.Equal(t, "Diet Cola", cola.Name)
	assert.Equal(t, "Zero Sugar", cola.Detail())
	assert.Equal(t, 5, r.Available(cola.ID), "renaming must keep stock")

	err := r.UpdateMenuItem(models.NewItemID(), func(*models.MenuItem) error { return nil })
	assert.True(t, errors.Is(err, ErrItemNotFound))

	boom := errors.New("boom")
	assert.Equal(t, boom, r.UpdateMenuItem(cola.ID, func(*models.MenuItem) error { return boom }))
}

func TestUpdateMenuItem_RenameCollisionIsUndone(t *testing.T) {
	r := New("Yummy Restaurant")
	burger := addFood(t, r, "Cheese Burger", "9.90", 10)
	cola := addFood(t, r, "Cola", "2.90", 5)

	err := r.UpdateMenuItem(cola.ID, func(item *models.MenuItem) error {
		item.Name = "cheese burger"
		return nil
	})
	assert.True(t, errors.Is(err, ErrDuplicateItemName))
	assert.Equal(t, "Cola", cola.Name)

	require.NoError(t, r.UpdateMenuItem(cola.ID, func(item *models.MenuItem) error {
		return item.SetPrice(decimal.RequireFromString("3.50"))
	}))
	assert.Equal(t, "3.50", cola.Price.StringFixed(2))
	assert.Equal(t, "9.90", burger.Price.StringFixed(2))

	found, ok := r.FindMenuItem("cheese burger")
	require.True(t, ok)
	assert.Same(t, burger, found)
}

// failingStock passes admission but refuses every deduction.
type failingStock struct {
	*inventory.Inventory
}

func (f failingStock) Adjust(id models.ItemID, delta int) error {
	if delta < 0 {
		return inventory.ErrNegativeStock
	}
	return f.Inventory.Adjust(id, delta)
}

func TestProcessOrder_CommitFailureIsInventoryCorruption(t *testing.T) {
	r := New("Yummy Restaurant")
	a := addFood(t, r, "A", "1.00", 3)
	r.inventory = failingStock{Inventory: r.inventory.(*inventory.Inventory)}

	c := cart.New()
	c.AddLine(a, 1)

	order, err := r.ProcessOrder(OrderRequest{Cart: c})
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, ErrInventoryCorruption))
	assert.False(t, errors.Is(err, ErrInsufficientStock))
	assert.True(t, errors.Is(err, inventory.ErrNegativeStock))

	var ice *InventoryCorruptionError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, a.ID, ice.ItemID)
	assert.Equal(t, "Yummy Restaurant", ice.Restaurant)
}
