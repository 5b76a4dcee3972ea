package console

import (
	"strings"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
	"github.com/brandon-nx/Food-Ordering-System/internal/validation"
)

const adminExit = 8

func (c *Console) adminLogin() error {
	username, err := c.readLine("Enter admin username: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Enter admin password: ")
	if err != nil {
		return err
	}

	if !c.app.Auth.Authenticate(username, password) {
		c.app.Logger.Warn("admin_login_failed", "Rejected admin credentials", "", nil)
		c.println(separator)
		c.println("Invalid admin credentials. Please try again.")
		c.println(separator)
		return nil
	}

	c.app.Logger.Info("admin_login", "Admin logged in", "", nil)
	return c.adminMenu()
}

func (c *Console) adminMenu() error {
	for {
		c.displayAdminMenu()
		option, err := c.readInt("")
		if err != nil {
			return err
		}
		c.println(separator)

		switch option {
		case 1:
			err = c.addData()
		case 2:
			err = c.deleteData()
		case 3:
			err = c.modifyData()
		case 4:
			c.viewData()
		case 5:
			err = c.restockItem()
		case 6:
			c.lowStockReport()
		case 7:
			err = c.renameMember()
		case adminExit:
			c.println("Exiting admin mode...")
			c.println(separator)
			return nil
		default:
			c.println("Invalid option. Please try again (1-8).")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) displayAdminMenu() {
	c.println(separator)
	c.println("Admin Menu:")
	c.println("1. Add Restaurant/Menu/Special Offer")
	c.println("2. Delete Restaurant/Menu")
	c.println("3. Modify Restaurant/Menu")
	c.println("4. View All Existing Restaurant and Its Menu")
	c.println("5. Restock Menu Item")
	c.println("6. Low Stock Report")
	c.println("7. Rename Member")
	c.println("8. Exit Admin Mode")
	c.println(separator)
	c.printf("Enter your choice: ")
}

func (c *Console) displayAllRestaurants() bool {
	rs := c.app.Restaurants()
	if len(rs) == 0 {
		c.println("No restaurants available.")
		return false
	}
	for i, r := range rs {
		c.printf("%d. %s\n", i+1, r.Name())
	}
	return true
}

// selectRestaurant lists restaurants and reads a position. It returns nil
// after printing a message when the choice is invalid.
func (c *Console) selectRestaurant(prompt string) (*restaurant.Restaurant, error) {
	if !c.displayAllRestaurants() {
		return nil, nil
	}
	position, err := c.readInt(prompt)
	if err != nil {
		return nil, err
	}
	r, lookupErr := c.app.Restaurant(position)
	if lookupErr != nil {
		c.println("Invalid restaurant selection.")
		return nil, nil
	}
	return r, nil
}

func (c *Console) displayMenuItems(r *restaurant.Restaurant) {
	c.printf("Menu Items in %s:\n", r.Name())
	for _, item := range r.Menu() {
		c.printf("  %s\n", item.Name)
	}
	c.println(separator)
}

func (c *Console) addData() error {
	choice, err := c.readLetter("Do you want to add a new Restaurant (R), a new Menu Item (M) or a Special Offer (O)? (R/M/O): ")
	if err != nil {
		return err
	}

	switch choice {
	case "R":
		name, err := c.readLine("Enter the name of the new restaurant: ")
		if err != nil {
			return err
		}
		if _, addErr := c.app.AddRestaurant(strings.TrimSpace(name)); addErr != nil {
			c.printf("Invalid restaurant: %v\n", addErr)
			return nil
		}
		c.println("Restaurant added successfully.")
	case "M":
		r, err := c.selectRestaurant("Enter the number of the restaurant to add menu item: ")
		if err != nil || r == nil {
			return err
		}
		return c.addMenuItem(r)
	case "O":
		r, err := c.selectRestaurant("Enter the number of the restaurant to add a special offer: ")
		if err != nil || r == nil {
			return err
		}
		return c.addSpecialOffer(r)
	default:
		c.println("Invalid choice.")
	}
	return nil
}

func (c *Console) addMenuItem(r *restaurant.Restaurant) error {
	name, err := c.readLine("Enter item name: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	price, err := c.readDecimal("Enter item price: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("Enter item description: ")
	if err != nil {
		return err
	}
	kind, err := c.readLetter("Is this a Food item (F) or a Drink item (D)? (F/D): ")
	if err != nil {
		return err
	}

	var detailPrompt string
	switch kind {
	case "F":
		detailPrompt = "Enter cuisine type: "
	case "D":
		detailPrompt = "Enter beverage type: "
	default:
		c.println("Invalid menu item type.")
		return nil
	}
	detail, err := c.readLine(detailPrompt)
	if err != nil {
		return err
	}
	stock, err := c.readInt("Enter initial stock quantity for this item: ")
	if err != nil {
		return err
	}

	if err := validation.ValidateMenuItem(name, price, description); err != nil {
		c.printf("Invalid menu item: %v\n", err)
		return nil
	}
	if _, exists := r.FindMenuItem(name); exists {
		c.printf("%s already has an item named %s.\n", r.Name(), name)
		return nil
	}

	var item *models.MenuItem
	if kind == "F" {
		item, err = models.NewFood(name, price, description, detail)
	} else {
		item, err = models.NewDrink(name, price, description, detail)
	}
	if err == nil {
		err = r.AddToMenu(item, stock)
	}
	if err != nil {
		c.printf("Invalid menu item: %v\n", err)
		return nil
	}

	c.app.Logger.Info("menu_item_added", "Menu item added", "", map[string]interface{}{
		"restaurant": r.Name(),
		"item":       name,
		"stock":      stock,
	})
	c.printf("Menu item added successfully with initial stock of %d.\n", stock)
	return nil
}

func (c *Console) addSpecialOffer(r *restaurant.Restaurant) error {
	description, err := c.readLine("Enter offer description: ")
	if err != nil {
		return err
	}
	discount, err := c.readDecimal("Enter discount percentage (0-100): ")
	if err != nil {
		return err
	}

	if err := validation.ValidateDiscount(discount); err != nil {
		c.printf("Invalid offer: %v\n", err)
		return nil
	}
	offer, err := models.NewSpecialOffer(strings.TrimSpace(description), discount)
	if err != nil {
		c.printf("Invalid offer: %v\n", err)
		return nil
	}
	r.AddSpecialOffer(offer)
	c.println("Special offer added successfully.")
	return nil
}

func (c *Console) deleteData() error {
	choice, err := c.readLetter("Do you want to delete a Restaurant (R) or a Menu Item (M)? (R/M): ")
	if err != nil {
		return err
	}

	switch choice {
	case "R":
		if !c.displayAllRestaurants() {
			return nil
		}
		position, err := c.readInt("Enter the number of the restaurant to delete: ")
		if err != nil {
			return err
		}
		if _, rmErr := c.app.RemoveRestaurant(position); rmErr != nil {
			c.println("Invalid restaurant selection.")
			return nil
		}
		c.println("Restaurant deleted successfully.")
	case "M":
		r, err := c.selectRestaurant("Enter the number of the restaurant to delete a menu item: ")
		if err != nil || r == nil {
			return err
		}
		name, err := c.readLine("Enter the name of the menu item to delete: ")
		if err != nil {
			return err
		}
		if !r.RemoveMenuItem(name) {
			c.println("Menu item not found.")
			return nil
		}
		c.println("Menu item deleted successfully.")
	default:
		c.println("Invalid choice.")
	}
	return nil
}

func (c *Console) modifyData() error {
	choice, err := c.readLetter("Do you want to modify a Restaurant (R) or a Menu Item (M)? (R/M): ")
	if err != nil {
		return err
	}
	c.println(separator)

	switch choice {
	case "R":
		return c.modifyRestaurant()
	case "M":
		return c.modifyMenuItem()
	default:
		c.println("Invalid choice.")
	}
	return nil
}

func (c *Console) modifyRestaurant() error {
	r, err := c.selectRestaurant("Enter the restaurant's number to modify: ")
	if err != nil || r == nil {
		return err
	}
	c.println(separator)

	name, err := c.readLine("Enter new name for the restaurant: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := validation.ValidateRestaurantName(name); err != nil {
		c.printf("Invalid restaurant: %v\n", err)
		return nil
	}
	r.Rename(name)
	c.println(separator)
	c.println("Restaurant name updated successfully.")
	return nil
}

func (c *Console) modifyMenuItem() error {
	r, err := c.selectRestaurant("Enter the restaurant's number to modify its menu: ")
	if err != nil || r == nil {
		return err
	}
	c.println(separator)
	c.displayMenuItems(r)

	name, err := c.readLine("Enter the name of the menu item to modify: ")
	if err != nil {
		return err
	}
	item, ok := r.FindMenuItem(name)
	c.println(separator)
	if !ok {
		c.println("Menu item not found.")
		return nil
	}

	c.printf("Selected Item: %s\n", item.Name)
	c.println("1. Change Name")
	c.println("2. Change Price")
	c.println("3. Change Description")
	c.printf("4. Change %s\n", item.DetailLabel())
	c.println(separator)

	option, err := c.readInt("Enter your choice: ")
	if err != nil {
		return err
	}

	var edit func(*models.MenuItem) error
	switch option {
	case 1:
		newName, err := c.readLine("Enter new name: ")
		if err != nil {
			return err
		}
		newName = strings.TrimSpace(newName)
		if newName == "" {
			c.println("Item name is required.")
			return nil
		}
		edit = func(m *models.MenuItem) error { m.Name = newName; return nil }
	case 2:
		price, err := c.readDecimal("Enter new price: ")
		if err != nil {
			return err
		}
		if err := validation.ValidatePrice(price); err != nil {
			c.printf("Invalid price: %v\n", err)
			return nil
		}
		edit = func(m *models.MenuItem) error { return m.SetPrice(price) }
	case 3:
		description, err := c.readLine("Enter new description: ")
		if err != nil {
			return err
		}
		edit = func(m *models.MenuItem) error { m.Description = description; return nil }
	case 4:
		detail, err := c.readLine("Enter new " + strings.ToLower(item.DetailLabel()) + ": ")
		if err != nil {
			return err
		}
		edit = func(m *models.MenuItem) error { m.SetDetail(detail); return nil }
	default:
		c.println("Invalid choice.")
		return nil
	}

	if err := r.UpdateMenuItem(item.ID, edit); err != nil {
		c.printf("Unable to update menu item: %v\n", err)
		return nil
	}
	c.println(separator)
	c.println("Menu item updated successfully.")
	return nil
}

func (c *Console) viewData() {
	rs := c.app.Restaurants()
	if len(rs) == 0 {
		c.println("No restaurants available.")
		return
	}

	for _, r := range rs {
		c.printf("Restaurant: %s\n", r.Name())
		menu := r.Menu()
		if len(menu) == 0 {
			c.println("  No menu items available.")
		}
		for _, item := range menu {
			c.printf("  %s (%s: %s) - %s - Stock: %d\n",
				item.Name, item.DetailLabel(), item.Detail(), c.money(item.Price), r.Available(item.ID))
		}
		for _, o := range r.Offers() {
			c.printf("  Offer: %s (%s%%)\n", o.Description, o.Discount.String())
		}
		c.println()
	}
}

func (c *Console) restockItem() error {
	r, err := c.selectRestaurant("Enter restaurant's number to restock one of its menu item: ")
	if err != nil || r == nil {
		return err
	}
	c.println(separator)
	c.displayMenuItems(r)

	name, err := c.readLine("Enter the name of the menu item to restock: ")
	if err != nil {
		return err
	}
	item, ok := r.FindMenuItem(name)
	if !ok {
		c.println(separator)
		c.println("Menu item not found.")
		return nil
	}

	quantity, err := c.readInt("Enter the quantity to add to stock: ")
	if err != nil {
		return err
	}
	c.println(separator)
	if quantity <= 0 {
		c.println("Invalid quantity. Please enter a positive number.")
		return nil
	}
	if err := r.Restock(item.ID, quantity); err != nil {
		c.printf("Unable to restock: %v\n", err)
		return nil
	}

	c.app.Logger.Info("item_restocked", "Menu item restocked", "", map[string]interface{}{
		"restaurant": r.Name(),
		"item":       item.Name,
		"quantity":   quantity,
		"stock":      r.Available(item.ID),
	})
	c.printf("Restocked %d units of %s.\n", quantity, item.Name)
	return nil
}

func (c *Console) renameMember() error {
	memberID, err := c.readLine("Enter the member ID to rename: ")
	if err != nil {
		return err
	}
	memberID = strings.TrimSpace(memberID)
	customer, ok := c.app.Customers.Get(memberID)
	if !ok {
		c.println("Member ID not found.")
		return nil
	}

	name, err := c.readLine("Enter new name for " + customer.Name + ": ")
	if err != nil {
		return err
	}
	oldName := customer.Name
	if err := c.app.Customers.Rename(memberID, name); err != nil {
		c.printf("Unable to rename member: %v\n", err)
		return nil
	}

	c.app.Logger.Info("member_renamed", "Member renamed", "", map[string]interface{}{
		"member_id": memberID,
		"old_name":  oldName,
		"new_name":  customer.Name,
	})
	c.printf("Member %s renamed to %s.\n", memberID, customer.Name)
	return nil
}

func (c *Console) lowStockReport() {
	threshold := c.app.Orders.LowStockThreshold()
	found := false
	for _, r := range c.app.Restaurants() {
		low := r.LowStockItems(threshold)
		if len(low) == 0 {
			continue
		}
		found = true
		c.printf("Restaurant: %s\n", r.Name())
		for _, item := range low {
			c.printf("  %s - Stock: %d\n", item.Name, r.Available(item.ID))
		}
	}
	if !found {
		c.printf("No items at or below the low-stock threshold (%d).\n", threshold)
	}
}
