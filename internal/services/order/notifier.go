package order

import (
	"context"
	"errors"

	"github.com/brandon-nx/Food-Ordering-System/internal/customers"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
)

// Publisher sends a notification envelope. *messaging.Publisher satisfies it.
type Publisher interface {
	PublishNotification(ctx context.Context, n *models.Notification) error
}

// Notifier publishes order_placed and low_stock notifications.
type Notifier struct {
	publisher Publisher
}

func NewNotifier(p Publisher) *Notifier {
	return &Notifier{publisher: p}
}

func (n *Notifier) Name() string {
	return "rabbitmq"
}

func (n *Notifier) RecordOrder(ctx context.Context, customer *customers.Customer, order *restaurant.Order) error {
	note, err := models.NewNotification(models.NotificationOrderPlaced, NewOrderPlacedMessage(customer, order))
	if err != nil {
		return err
	}
	return n.publisher.PublishNotification(ctx, note)
}

// AlertLowStock publishes one notification per alert.
func (n *Notifier) AlertLowStock(ctx context.Context, alerts []models.StockAlertMessage) error {
	var errs []error
	for _, alert := range alerts {
		note, err := models.NewNotification(models.NotificationLowStock, alert)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := n.publisher.PublishNotification(ctx, note); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewOrderPlacedMessage converts a committed order to its wire form.
func NewOrderPlacedMessage(customer *customers.Customer, order *restaurant.Order) models.OrderPlacedMessage {
	lines := order.Lines()
	items := make([]models.OrderLineMessage, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderLineMessage{
			ItemID:    string(line.ItemID),
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
		})
	}

	var offers []string
	for _, offer := range order.Offers() {
		offers = append(offers, offer.Description)
	}

	return models.OrderPlacedMessage{
		OrderNumber: order.Number(),
		MemberID:    customer.MemberID,
		Customer:    customer.Name,
		Restaurant:  order.RestaurantName(),
		Items:       items,
		Offers:      offers,
		Subtotal:    order.Subtotal().StringFixed(2),
		TotalAmount: order.TotalCost().StringFixed(2),
		PlacedAt:    order.PlacedAt(),
	}
}
