package app

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

type seedItem struct {
	name        string
	price       string
	description string
	drink       bool
	detail      string
	stock       int
}

type seedOffer struct {
	description string
	discount    int64
}

type seedRestaurant struct {
	name   string
	items  []seedItem
	offers []seedOffer
}

var seedData = []seedRestaurant{
	{
		name: "Yummy Restaurant",
		items: []seedItem{
			{"Cheese Burger", "9.90", "Delicious cheesy chicken burger with pickle inside", false, "American", 10},
			{"Chicken Chop", "14.90", "Delicious chicken chop sides with wedges and salad", false, "Western", 10},
			{"Cola", "2.90", "Refreshing cola drink", true, "Soft Drink", 20},
		},
	},
	{
		name: "Delicious Restaurant",
		items: []seedItem{
			{"Carbonara Pasta", "12.90", "Delicious creamy cheesy spaghetti with chicken slices", false, "Italian", 10},
			{"Sprite", "2.90", "Refreshing lemon-lime drink", true, "Soft Drink", 20},
			{"Ice Lemon Tea", "2.90", "Refreshing iced tea with lemon", true, "Soft Drink", 20},
		},
		offers: []seedOffer{
			{"10% Off on All Soft Drink", 10},
		},
	},
}

// Seed adds the two demo restaurants with their menus and offers.
func (a *App) Seed() error {
	for _, sr := range seedData {
		r, err := a.AddRestaurant(sr.name)
		if err != nil {
			return err
		}

		for _, si := range sr.items {
			price := decimal.RequireFromString(si.price)
			var item *models.MenuItem
			if si.drink {
				item, err = models.NewDrink(si.name, price, si.description, si.detail)
			} else {
				item, err = models.NewFood(si.name, price, si.description, si.detail)
			}
			if err != nil {
				return fmt.Errorf("seed %s: %w", sr.name, err)
			}
			if err := r.AddToMenu(item, si.stock); err != nil {
				return fmt.Errorf("seed %s: %w", sr.name, err)
			}
		}

		for _, so := range sr.offers {
			offer, err := models.NewSpecialOffer(so.description, decimal.NewFromInt(so.discount))
			if err != nil {
				return fmt.Errorf("seed %s: %w", sr.name, err)
			}
			r.AddSpecialOffer(offer)
		}
	}
	return nil
}
