// Package app holds the state of one FoodieBran session: restaurants,
// customers and the services that act on them.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/brandon-nx/Food-Ordering-System/internal/admin"
	"github.com/brandon-nx/Food-Ordering-System/internal/config"
	"github.com/brandon-nx/Food-Ordering-System/internal/customers"
	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
	"github.com/brandon-nx/Food-Ordering-System/internal/services/order"
	"github.com/brandon-nx/Food-Ordering-System/internal/validation"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantOffer pairs an offer with the restaurant running it.
type RestaurantOffer struct {
	Restaurant string
	Offer      models.SpecialOffer
}

// App is the explicit application context passed to the console.
type App struct {
	Config    *config.Config
	Customers *customers.Directory
	Store     customers.FileStore
	Orders    *order.Service
	Auth      admin.Authenticator
	Logger    *logger.Logger

	mu          sync.Mutex
	restaurants []*restaurant.Restaurant
}

func New(cfg *config.Config, log *logger.Logger, orders *order.Service, ids customers.IDSource) *App {
	return &App{
		Config:    cfg,
		Customers: customers.NewDirectory(ids),
		Store:     customers.FileStore{Path: cfg.App.CustomersFile},
		Orders:    orders,
		Auth:      admin.NewStaticCredentials(cfg.Admin.Username, cfg.Admin.Password),
		Logger:    log,
	}
}

// Restaurants returns the restaurants in display order.
func (a *App) Restaurants() []*restaurant.Restaurant {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*restaurant.Restaurant, len(a.restaurants))
	copy(out, a.restaurants)
	return out
}

// Restaurant returns the restaurant at a 1-based display position.
func (a *App) Restaurant(position int) (*restaurant.Restaurant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if position < 1 || position > len(a.restaurants) {
		return nil, fmt.Errorf("restaurant %d: %w", position, ErrRestaurantNotFound)
	}
	return a.restaurants[position-1], nil
}

func (a *App) AddRestaurant(name string) (*restaurant.Restaurant, error) {
	if err := validation.ValidateRestaurantName(name); err != nil {
		return nil, err
	}

	r := restaurant.New(name)
	a.mu.Lock()
	a.restaurants = append(a.restaurants, r)
	a.mu.Unlock()

	a.Logger.Info("restaurant_added", "Restaurant added", "", map[string]interface{}{
		"restaurant": name,
	})
	return r, nil
}

// RemoveRestaurant deletes the restaurant at a 1-based display position.
func (a *App) RemoveRestaurant(position int) (*restaurant.Restaurant, error) {
	a.mu.Lock()
	if position < 1 || position > len(a.restaurants) {
		a.mu.Unlock()
		return nil, fmt.Errorf("restaurant %d: %w", position, ErrRestaurantNotFound)
	}
	r := a.restaurants[position-1]
	a.restaurants = append(a.restaurants[:position-1], a.restaurants[position:]...)
	a.mu.Unlock()

	a.Logger.Info("restaurant_removed", "Restaurant removed", "", map[string]interface{}{
		"restaurant": r.Name(),
	})
	return r, nil
}

// SpecialOffers lists every offer across all restaurants.
func (a *App) SpecialOffers() []RestaurantOffer {
	var out []RestaurantOffer
	for _, r := range a.Restaurants() {
		for _, o := range r.Offers() {
			out = append(out, RestaurantOffer{Restaurant: r.Name(), Offer: o})
		}
	}
	return out
}

// LoadCustomers reads the customer file into the directory. Problems are
// logged, never fatal.
func (a *App) LoadCustomers() int {
	n, err := a.Store.LoadInto(a.Customers)
	if err != nil {
		a.Logger.Error("customers_load_failed", "Some customer records could not be loaded", "startup", err, map[string]interface{}{
			"file":   a.Store.Path,
			"loaded": n,
		})
	}
	a.Logger.Info("customers_loaded", "Customers loaded", "startup", map[string]interface{}{
		"file":  a.Store.Path,
		"count": n,
	})
	return n
}

// SaveCustomers writes every customer to the customer file.
func (a *App) SaveCustomers() error {
	if err := a.Store.SaveFrom(a.Customers); err != nil {
		a.Logger.Error("customers_save_failed", "Failed to save customers", "shutdown", err, map[string]interface{}{
			"file": a.Store.Path,
		})
		return err
	}
	a.Logger.Info("customers_saved", "Customers saved", "shutdown", map[string]interface{}{
		"file":  a.Store.Path,
		"count": a.Customers.Len(),
	})
	return nil
}
