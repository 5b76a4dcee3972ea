package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name      string
		customer  [3]string
		wantErr   bool
		wantField string
	}{
		{
			name:     "valid registration",
			customer: [3]string{"Alice", "0123456789", "1 Jalan Ampang"},
			wantErr:  false,
		},
		{
			name:      "missing name",
			customer:  [3]string{"  ", "0123456789", "1 Jalan Ampang"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "comma in address",
			customer:  [3]string{"Alice", "0123456789", "1, Jalan Ampang"},
			wantErr:   true,
			wantField: "delivery_address",
		},
		{
			name:      "missing contact number",
			customer:  [3]string{"Alice", "", "1 Jalan Ampang"},
			wantErr:   true,
			wantField: "contact_number",
		},
		{
			name:      "name too long",
			customer:  [3]string{strings.Repeat("a", 101), "0123456789", "1 Jalan Ampang"},
			wantErr:   true,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.customer[0], tt.customer[1], tt.customer[2])
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		price       string
		description string
		wantErr     bool
	}{
		{name: "valid item", itemName: "Cheese Burger", price: "9.90", description: "Beef patty", wantErr: false},
		{name: "free item", itemName: "Water", price: "0", description: "", wantErr: false},
		{name: "missing name", itemName: "", price: "9.90", wantErr: true},
		{name: "negative price", itemName: "Cola", price: "-1", wantErr: true},
		{name: "price too high", itemName: "Caviar", price: "10000", wantErr: true},
		{name: "description too long", itemName: "Cola", price: "2.90", description: strings.Repeat("x", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenuItem(tt.itemName, decimal.RequireFromString(tt.price), tt.description)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMenuItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		quantity int
		wantErr  bool
	}{
		{quantity: 1, wantErr: false},
		{quantity: 100, wantErr: false},
		{quantity: 0, wantErr: true},
		{quantity: -3, wantErr: true},
		{quantity: 101, wantErr: true},
	}

	for _, tt := range tests {
		if err := ValidateQuantity(tt.quantity); (err != nil) != tt.wantErr {
			t.Errorf("ValidateQuantity(%d) error = %v, wantErr %v", tt.quantity, err, tt.wantErr)
		}
	}
}

func TestValidateDiscountAndRestaurantName(t *testing.T) {
	if err := ValidateDiscount(decimal.NewFromInt(10)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDiscount(decimal.NewFromInt(101)); err == nil {
		t.Error("expected error for discount above 100")
	}
	if err := ValidateDiscount(decimal.NewFromInt(-1)); err == nil {
		t.Error("expected error for negative discount")
	}
	if err := ValidateRestaurantName(""); err == nil {
		t.Error("expected error for empty restaurant name")
	}
	if err := ValidateRestaurantName("Yummy Restaurant"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
