// Package order runs checkouts: it numbers orders, commits them against a
// restaurant and fans the result out to the configured sinks.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brandon-nx/Food-Ordering-System/internal/cart"
	"github.com/brandon-nx/Food-Ordering-System/internal/customers"
	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
)

var ErrNoCustomer = errors.New("checkout requires a registered customer")

// Sink receives every committed order. Sinks never affect the outcome of
// a checkout; their errors are only logged.
type Sink interface {
	Name() string
	RecordOrder(ctx context.Context, customer *customers.Customer, order *restaurant.Order) error
}

// Alerter is told about items that fell to or below the low-stock threshold.
type Alerter interface {
	AlertLowStock(ctx context.Context, alerts []models.StockAlertMessage) error
}

// SequenceSource reports the highest order sequence already recorded for a
// day (YYYYMMDD).
type SequenceSource interface {
	LastSequence(ctx context.Context, day string) (int, error)
}

type Service struct {
	numbers   *Numberer
	sinks     []Sink
	alerter   Alerter
	threshold int
	logger    *logger.Logger
}

type Option func(*Service)

func WithSinks(sinks ...Sink) Option {
	return func(s *Service) { s.sinks = append(s.sinks, sinks...) }
}

func WithAlerter(a Alerter) Option {
	return func(s *Service) { s.alerter = a }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.numbers = NewNumberer(now) }
}

func NewService(log *logger.Logger, lowStockThreshold int, opts ...Option) *Service {
	s := &Service{
		numbers:   NewNumberer(time.Now),
		threshold: lowStockThreshold,
		logger:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResumeNumbering continues today's sequence from src.
func (s *Service) ResumeNumbering(ctx context.Context, src SequenceSource) error {
	day := s.numbers.Today()
	last, err := src.LastSequence(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to read last order sequence: %w", err)
	}
	s.numbers.Resume(day, last)
	s.logger.Info("order_numbering_resumed", "Resumed order numbering", "startup", map[string]interface{}{
		"day":  day,
		"last": last,
	})
	return nil
}

// Checkout commits c against r for customer. On success the order is added
// to the customer's history, the cart is emptied and every sink is
// notified. On failure nothing changes and the error from the restaurant is
// returned.
func (s *Service) Checkout(ctx context.Context, customer *customers.Customer, r *restaurant.Restaurant, c *cart.Cart) (*restaurant.Order, error) {
	requestID := logger.GenerateRequestID()

	if customer == nil {
		return nil, ErrNoCustomer
	}

	number := s.numbers.Next()
	order, err := r.ProcessOrder(restaurant.OrderRequest{
		Number:     number,
		CustomerID: customer.MemberID,
		Cart:       c,
	})
	if err != nil {
		s.logger.Warn("order_rejected", "Checkout rejected", requestID, map[string]interface{}{
			"order_number": number,
			"member_id":    customer.MemberID,
			"restaurant":   r.Name(),
			"reason":       err.Error(),
		})
		return nil, err
	}

	customer.AddOrder(order)
	c.Reset()

	s.logger.Info("order_committed", "Order committed", requestID, map[string]interface{}{
		"order_number": order.Number(),
		"member_id":    customer.MemberID,
		"restaurant":   order.RestaurantName(),
		"lines":        len(order.Lines()),
		"subtotal":     order.Subtotal().StringFixed(2),
		"total_amount": order.TotalCost().StringFixed(2),
	})

	s.fanOut(ctx, requestID, customer, order)
	s.checkStock(ctx, requestID, r, order)

	return order, nil
}

func (s *Service) fanOut(ctx context.Context, requestID string, customer *customers.Customer, order *restaurant.Order) {
	if len(s.sinks) == 0 {
		return
	}

	var g errgroup.Group
	for _, sink := range s.sinks {
		g.Go(func() error {
			if err := sink.RecordOrder(ctx, customer, order); err != nil {
				s.logger.Error("order_sink_failed", fmt.Sprintf("Failed to record order in %s", sink.Name()), requestID, err, map[string]interface{}{
					"order_number": order.Number(),
					"sink":         sink.Name(),
				})
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("order_sinks_incomplete", "Order committed but not every sink recorded it", requestID, map[string]interface{}{
			"order_number": order.Number(),
		})
	}
}

// checkStock alerts on items from this order that are now at or below the
// threshold.
func (s *Service) checkStock(ctx context.Context, requestID string, r *restaurant.Restaurant, order *restaurant.Order) {
	ordered := make(map[models.ItemID]bool)
	for _, line := range order.Lines() {
		ordered[line.ItemID] = true
	}

	var alerts []models.StockAlertMessage
	for _, item := range r.LowStockItems(s.threshold) {
		if !ordered[item.ID] {
			continue
		}
		alert := models.StockAlertMessage{
			Restaurant: order.RestaurantName(),
			ItemName:   item.Name,
			Remaining:  r.Available(item.ID),
			Threshold:  s.threshold,
		}
		alerts = append(alerts, alert)
		s.logger.Warn("low_stock", fmt.Sprintf("%s is running low", item.Name), requestID, map[string]interface{}{
			"restaurant": alert.Restaurant,
			"item":       alert.ItemName,
			"remaining":  alert.Remaining,
			"threshold":  alert.Threshold,
		})
	}

	if len(alerts) == 0 || s.alerter == nil {
		return
	}
	if err := s.alerter.AlertLowStock(ctx, alerts); err != nil {
		s.logger.Error("low_stock_alert_failed", "Failed to publish low stock alerts", requestID, err, nil)
	}
}

// LowStockThreshold is the level at or below which items are reported.
func (s *Service) LowStockThreshold() int {
	return s.threshold
}
