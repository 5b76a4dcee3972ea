// Package validation checks console input before it reaches the core.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	maxNameLength        = 100
	maxDescriptionLength = 200
	maxQuantity          = 100
)

var maxPrice = decimal.RequireFromString("9999.99")

// ValidateRegistration checks the fields of a new customer. Commas are
// rejected because the customer file is comma separated.
func ValidateRegistration(name, contactNumber, deliveryAddress string) error {
	if err := validateRecordField("name", name, maxNameLength); err != nil {
		return err
	}

	if err := validateRecordField("contact_number", contactNumber, 20); err != nil {
		return err
	}

	if err := validateRecordField("delivery_address", deliveryAddress, maxDescriptionLength); err != nil {
		return err
	}

	return nil
}

// ValidateCustomerName checks a replacement customer name.
func ValidateCustomerName(name string) error {
	return validateRecordField("name", name, maxNameLength)
}

func validateRecordField(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", strings.ReplaceAll(field, "_", " ")),
		}
	}

	if len(value) > maxLen {
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", maxLen),
		}
	}

	if strings.Contains(value, ",") {
		return ValidationError{
			Field:   field,
			Message: "must not contain commas",
		}
	}
	return nil
}

// ValidateRestaurantName checks the name of a new or renamed restaurant.
func ValidateRestaurantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{
			Field:   "restaurant_name",
			Message: "restaurant name is required",
		}
	}

	if len(name) > maxNameLength {
		return ValidationError{
			Field:   "restaurant_name",
			Message: fmt.Sprintf("must be at most %d characters", maxNameLength),
		}
	}
	return nil
}

// ValidateMenuItem checks the admin input for a menu item.
func ValidateMenuItem(name string, price decimal.Decimal, description string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{
			Field:   "item_name",
			Message: "item name is required",
		}
	}

	if len(name) > maxNameLength {
		return ValidationError{
			Field:   "item_name",
			Message: fmt.Sprintf("must be at most %d characters", maxNameLength),
		}
	}

	if err := ValidatePrice(price); err != nil {
		return err
	}

	if len(description) > maxDescriptionLength {
		return ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength),
		}
	}
	return nil
}

func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		}
	}

	if price.GreaterThan(maxPrice) {
		return ValidationError{
			Field:   "price",
			Message: "price must be less than or equal to " + maxPrice.StringFixed(2),
		}
	}
	return nil
}

// ValidateQuantity checks an order or restock quantity.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		}
	}

	if quantity > maxQuantity {
		return ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must be less than or equal to %d", maxQuantity),
		}
	}
	return nil
}

// ValidateDiscount checks an offer percentage.
func ValidateDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return ValidationError{
			Field:   "discount",
			Message: "discount must be between 0 and 100",
		}
	}
	return nil
}
