package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem_RejectsNegativePrice(t *testing.T) {
	_, err := NewFood("Burger", decimal.RequireFromString("-0.01"), "", "American")
	assert.True(t, errors.Is(err, ErrNegativePrice))

	item, err := NewDrink("Water", decimal.Zero, "Free tap water", "Still")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
}

func TestMenuItem_SetPrice(t *testing.T) {
	item, err := NewFood("Burger", decimal.RequireFromString("8.99"), "", "American")
	require.NoError(t, err)

	assert.Error(t, item.SetPrice(decimal.RequireFromString("-1")))
	assert.Equal(t, "8.99", item.Price.StringFixed(2))

	require.NoError(t, item.SetPrice(decimal.RequireFromString("9.50")))
	assert.Equal(t, "9.50", item.Price.StringFixed(2))
}

func TestMenuItem_IDsAreDistinct(t *testing.T) {
	a, _ := NewFood("Burger", decimal.NewFromInt(1), "", "American")
	b, _ := NewFood("Burger", decimal.NewFromInt(1), "", "American")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMenuItem_MatchesName(t *testing.T) {
	item, _ := NewFood("Cheese Burger", decimal.NewFromInt(10), "", "American")
	assert.True(t, item.MatchesName("cheese burger"))
	assert.True(t, item.MatchesName("  CHEESE BURGER "))
	assert.False(t, item.MatchesName("burger"))
}

func TestMenuItem_VariantDetail(t *testing.T) {
	food, _ := NewFood("Pasta", decimal.NewFromInt(12), "", "Italian")
	drink, _ := NewDrink("Sprite", decimal.NewFromInt(3), "", "Soft Drink")

	assert.Equal(t, "food", food.KindName())
	assert.Equal(t, "Cuisine Type", food.DetailLabel())
	assert.Equal(t, "Italian", food.Detail())

	assert.Equal(t, "drink", drink.KindName())
	assert.Equal(t, "Beverage Type", drink.DetailLabel())

	food.SetDetail("Fusion")
	drink.SetDetail("Soda")
	assert.Equal(t, Food{CuisineType: "Fusion"}, food.Kind)
	assert.Equal(t, Drink{BeverageType: "Soda"}, drink.Kind)
}

func TestSpecialOffer_Apply(t *testing.T) {
	offer, err := NewSpecialOffer("10% off", decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.Equal(t, "90.00", offer.Apply(decimal.NewFromInt(100)).StringFixed(2))
	assert.Equal(t, "0.00", offer.Apply(decimal.Zero).StringFixed(2))
}

func TestApplyAll_CompoundsSequentially(t *testing.T) {
	ten, _ := NewSpecialOffer("10% off", decimal.NewFromInt(10))
	twenty, _ := NewSpecialOffer("20% off", decimal.NewFromInt(20))

	tests := []struct {
		name   string
		amount string
		offers []SpecialOffer
		want   string
	}{
		{name: "no offers", amount: "100", offers: nil, want: "100.00"},
		{name: "two tens", amount: "100", offers: []SpecialOffer{ten, ten}, want: "81.00"},
		{name: "ten then twenty", amount: "50", offers: []SpecialOffer{ten, twenty}, want: "36.00"},
		{name: "twenty then ten", amount: "50", offers: []SpecialOffer{twenty, ten}, want: "36.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyAll(decimal.RequireFromString(tt.amount), tt.offers)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestNewSpecialOffer_Range(t *testing.T) {
	_, err := NewSpecialOffer("too much", decimal.NewFromInt(101))
	assert.True(t, errors.Is(err, ErrDiscountOutOfRange))

	_, err = NewSpecialOffer("negative", decimal.NewFromInt(-5))
	assert.True(t, errors.Is(err, ErrDiscountOutOfRange))

	full, err := NewSpecialOffer("free", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, full.Apply(decimal.NewFromInt(42)).IsZero())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "RM9.90", FormatMoney("RM", decimal.RequireFromString("9.9")))
	assert.Equal(t, "$0.00", FormatMoney("$", decimal.Zero))
}

func TestParseMoney(t *testing.T) {
	d, err := ParseMoney("12.90")
	require.NoError(t, err)
	assert.Equal(t, "12.90", d.StringFixed(2))

	_, err = ParseMoney("twelve")
	assert.Error(t, err)
}

func TestNotification_RoundTrip(t *testing.T) {
	n, err := NewNotification(NotificationLowStock, StockAlertMessage{
		Restaurant: "Yummy Restaurant",
		ItemName:   "Cola",
		Remaining:  2,
		Threshold:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, NotificationLowStock, n.Type)

	var alert StockAlertMessage
	require.NoError(t, n.Decode(&alert))
	assert.Equal(t, "Cola", alert.ItemName)
	assert.Equal(t, 2, alert.Remaining)
}

func TestParseNotification(t *testing.T) {
	n, err := NewNotification(NotificationOrderPlaced, OrderPlacedMessage{OrderNumber: "ORD_20260101_001"})
	require.NoError(t, err)

	body, err := n.Marshal()
	require.NoError(t, err)

	parsed, err := ParseNotification(body)
	require.NoError(t, err)
	assert.Equal(t, NotificationOrderPlaced, parsed.Type)

	var msg OrderPlacedMessage
	require.NoError(t, parsed.Decode(&msg))
	assert.Equal(t, "ORD_20260101_001", msg.OrderNumber)

	_, err = ParseNotification([]byte(`{"payload":{}}`))
	assert.Error(t, err)
	_, err = ParseNotification([]byte(`not json`))
	assert.Error(t, err)
}
