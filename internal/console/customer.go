package console

import (
	"context"
	"errors"
	"strings"

	"github.com/brandon-nx/Food-Ordering-System/internal/cart"
	"github.com/brandon-nx/Food-Ordering-System/internal/customers"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
	"github.com/brandon-nx/Food-Ordering-System/internal/validation"
)

func (c *Console) registerMember() error {
	name, err := c.readLine("Enter your name: ")
	if err != nil {
		return err
	}
	contact, err := c.readLine("Enter your contact number: ")
	if err != nil {
		return err
	}
	address, err := c.readLine("Enter your delivery address: ")
	if err != nil {
		return err
	}

	customer, err := c.app.Customers.Register(name, contact, address)
	var ve validation.ValidationError
	switch {
	case errors.Is(err, customers.ErrDuplicateMemberName):
		c.printf("A member with the name '%s' already exists. Please enter a different name.\n", strings.TrimSpace(name))
		return nil
	case errors.As(err, &ve):
		c.printf("Invalid %s: %s\n", strings.ReplaceAll(ve.Field, "_", " "), ve.Message)
		return nil
	case err != nil:
		c.printf("Registration failed: %v\n", err)
		return nil
	}

	c.app.Logger.Info("member_registered", "New member registered", "", map[string]interface{}{
		"member_id": customer.MemberID,
	})
	c.println(separator)
	c.printf("%s, you are now registered as a member with ID: %s\n", customer.Name, customer.MemberID)
	c.println(separator)
	return nil
}

func (c *Console) lookupMember() (*customers.Customer, error) {
	memberID, err := c.readLine("Enter your member ID: ")
	if err != nil {
		return nil, err
	}
	customer, ok := c.app.Customers.Get(memberID)
	if !ok {
		c.println(separator)
		c.println("Invalid member ID. Please try again.")
		c.println(separator)
		return nil, nil
	}
	return customer, nil
}

func (c *Console) placeOrder(ctx context.Context) error {
	customer, err := c.lookupMember()
	if err != nil || customer == nil {
		return err
	}
	c.println(separator)

	r, err := c.chooseRestaurant()
	if err != nil || r == nil {
		return err
	}

	basket := cart.New()
	for {
		input, err := c.readLine("Enter the name of the item you want to order (type 'done' to finish, 'view' to view cart, 'remove' to remove an item):\n")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "done":
			placed, err := c.finaliseOrder(ctx, customer, r, basket)
			if err != nil || placed {
				return err
			}
		case "view":
			c.displayCart(basket)
		case "remove":
			if err := c.removeFromCart(basket); err != nil {
				return err
			}
		default:
			if err := c.addToCart(r, basket, input); err != nil {
				return err
			}
		}
	}
}

// chooseRestaurant lists restaurants and shows the chosen menu. It returns
// nil when the user goes back.
func (c *Console) chooseRestaurant() (*restaurant.Restaurant, error) {
	rs := c.app.Restaurants()
	c.println("Please choose a restaurant or exit:")
	for i, r := range rs {
		c.printf("%d. %s\n", i+1, r.Name())
	}
	c.printf("%d. Return to main page\n", len(rs)+1)
	c.println(separator)

	option, err := c.readChoice("Enter your choice: ", 1, len(rs)+1)
	if err != nil {
		return nil, err
	}
	c.println(separator)

	if option == len(rs)+1 {
		c.println("Returning to the main page...")
		c.println(separator)
		return nil, nil
	}

	r := rs[option-1]
	c.printf("Welcome to %s!\n", r.Name())
	c.println(separator)
	c.println("Menu:")
	for _, item := range r.Menu() {
		c.printf("%s - %s\n", item.Name, c.money(item.Price))
		if item.Description != "" {
			c.printf("  %s (%s: %s)\n", item.Description, item.DetailLabel(), item.Detail())
		}
	}
	for _, o := range r.Offers() {
		c.printf("Offer: %s\n", o.Description)
	}
	c.println(separator)
	return r, nil
}

func (c *Console) addToCart(r *restaurant.Restaurant, basket *cart.Cart, name string) error {
	item, ok := r.FindMenuItem(name)
	if !ok {
		c.println(separator)
		c.println("Item not available or not found.")
		c.println(separator)
		return nil
	}

	quantity, err := c.readInt("Enter quantity: ")
	if err != nil {
		return err
	}
	c.println(separator)

	if err := validation.ValidateQuantity(quantity); err != nil {
		c.println("Invalid quantity. Please enter a positive number.")
		c.println(separator)
		return nil
	}

	inCart := 0
	for _, line := range basket.Lines() {
		if line.Item.ID == item.ID {
			inCart += line.Quantity
		}
	}
	if !r.IsItemAvailable(item.ID, inCart+quantity) {
		c.println("Item not available in the desired quantity.")
		c.println(separator)
		return nil
	}

	basket.AddLine(item, quantity)
	c.printf("Added %d x %s to your cart.\n", quantity, item.Name)
	c.println(separator)
	return nil
}

func (c *Console) displayCart(basket *cart.Cart) {
	if basket.IsEmpty() {
		c.println("Your cart is empty.")
		return
	}

	c.println("Cart Contents:")
	for _, line := range basket.Lines() {
		c.printf("%d x %s - %s\n", line.Quantity, line.Item.Name, c.money(line.Item.Price))
	}
	c.printf("Total Cost: %s\n", c.money(basket.Subtotal()))
}

func (c *Console) removeFromCart(basket *cart.Cart) error {
	lines := basket.Lines()
	if len(lines) == 0 {
		c.println("Your cart is empty.")
		return nil
	}

	for i, line := range lines {
		c.printf("%d. %d x %s\n", i+1, line.Quantity, line.Item.Name)
	}
	choice, err := c.readChoice("Enter the line number to remove (0 to cancel): ", 0, len(lines))
	if err != nil || choice == 0 {
		return err
	}

	line := lines[choice-1]
	basket.RemoveLine(line)
	c.printf("Removed %d x %s from your cart.\n", line.Quantity, line.Item.Name)
	return nil
}

func (c *Console) displayOrderSummary(basket *cart.Cart) {
	c.println(separator)
	c.println("Order Summary:")
	for _, s := range basket.Summary() {
		c.printf("%d x %s - %s\n", s.Quantity, s.Name, c.money(s.Total))
	}
	c.printf("Total Cost: %s\n", c.money(basket.Subtotal()))
	c.println(separator)
}

// finaliseOrder checks out the cart. It reports true when the ordering
// session is over: the order went through or the cart was empty.
func (c *Console) finaliseOrder(ctx context.Context, customer *customers.Customer, r *restaurant.Restaurant, basket *cart.Cart) (bool, error) {
	if basket.IsEmpty() {
		c.println(separator)
		c.println("Your cart is empty. No charges applied.")
		c.println(separator)
		return true, nil
	}

	c.displayOrderSummary(basket)

	order, err := c.app.Orders.Checkout(ctx, customer, r, basket)
	var ise *restaurant.InsufficientStockError
	switch {
	case errors.As(err, &ise):
		c.println("Unable to process the order due to insufficient stock.")
		for _, s := range ise.Shortages {
			c.printf("- %s: requested %d, available %d\n", s.Name, s.Requested, s.Available)
		}
		c.println("Your cart has been kept. Remove or change items and type 'done' again.")
		c.println(separator)
		return false, nil
	case err != nil:
		c.printf("Unable to process the order: %v\n", err)
		c.println(separator)
		return false, nil
	}

	for _, o := range order.Offers() {
		c.printf("Applied offer: %s\n", o.Description)
	}
	if !order.Discount().IsZero() {
		c.printf("You saved: %s\n", c.money(order.Discount()))
	}
	c.printf("Order %s confirmed! Total cost: %s\n", order.Number(), c.money(order.TotalCost()))
	c.println(separator)
	return true, nil
}

func (c *Console) orderHistory() error {
	customer, err := c.lookupMember()
	if err != nil || customer == nil {
		return err
	}

	history := customer.OrderHistory()
	c.println(separator)
	if len(history) == 0 {
		c.println("No past orders found.")
		c.println(separator)
		return nil
	}

	c.println("Order History:")
	for _, o := range history {
		c.printf("Order %s at %s - Total Cost: %s\n", o.Number(), o.RestaurantName(), c.money(o.TotalCost()))
		for _, line := range o.Lines() {
			c.printf("  %d x %s - %s\n", line.Quantity, line.Name, c.money(line.Total()))
		}
	}
	c.println(separator)
	return nil
}
