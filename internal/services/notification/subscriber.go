package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/messaging"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Source delivers raw message bodies to a handler until ctx is done.
// *messaging.Consumer satisfies it.
type Source interface {
	StartConsuming(ctx context.Context, handler messaging.MessageHandler) error
	Close() error
}

// Subscriber prints order and stock notifications as they arrive
type Subscriber struct {
	source   Source
	logger   *logger.Logger
	currency string

	mu  sync.Mutex
	out io.Writer
}

func NewSubscriber(source Source, log *logger.Logger, out io.Writer, currency string) *Subscriber {
	return &Subscriber{
		source:   source,
		logger:   log,
		out:      out,
		currency: currency,
	}
}

// Start consumes until ctx is cancelled, then closes the source
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.source.StartConsuming(ctx, s.handleNotification)

	s.logger.Info("graceful_shutdown", "Stopping notification subscriber", requestID, nil)
	if closeErr := s.source.Close(); closeErr != nil {
		s.logger.Error("graceful_shutdown", "Failed to close notification consumer", requestID, closeErr, nil)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("consumer_failed", "Notification consumer failed", requestID, err, nil)
		return err
	}
	return nil
}

// handleNotification decodes one envelope and displays it
func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	n, err := models.ParseNotification(body)
	if err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("%w: %v", messaging.ErrDiscard, err)
	}

	line, err := s.formatNotification(n)
	if err != nil {
		s.logger.Error("message_parsing_failed", "Failed to decode notification payload", requestID, err, map[string]interface{}{
			"type": string(n.Type),
		})
		return fmt.Errorf("%w: %v", messaging.ErrDiscard, err)
	}

	s.mu.Lock()
	_, err = fmt.Fprintln(s.out, line)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to display notification: %w", err)
	}

	s.logger.Info("notification_displayed", "Notification displayed to user", requestID, map[string]interface{}{
		"type":      string(n.Type),
		"timestamp": n.Timestamp.Format(timestampLayout),
	})
	return nil
}

// formatNotification creates a human-readable notification message
func (s *Subscriber) formatNotification(n *models.Notification) (string, error) {
	timestamp := n.Timestamp.Local().Format(timestampLayout)

	switch n.Type {
	case models.NotificationOrderPlaced:
		var msg models.OrderPlacedMessage
		if err := n.Decode(&msg); err != nil {
			return "", err
		}
		items := make([]string, 0, len(msg.Items))
		for _, item := range msg.Items {
			items = append(items, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		}
		line := fmt.Sprintf(
			"[%s] Order %s placed by %s (%s) at %s: %s. Total %s%s",
			timestamp,
			msg.OrderNumber,
			msg.Customer,
			msg.MemberID,
			msg.Restaurant,
			strings.Join(items, ", "),
			s.currency,
			msg.TotalAmount,
		)
		if len(msg.Offers) > 0 {
			line += fmt.Sprintf(" (offers: %s)", strings.Join(msg.Offers, "; "))
		}
		return line, nil

	case models.NotificationLowStock:
		var msg models.StockAlertMessage
		if err := n.Decode(&msg); err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"[%s] Low stock at %s: %s has %d left (threshold %d)",
			timestamp,
			msg.Restaurant,
			msg.ItemName,
			msg.Remaining,
			msg.Threshold,
		), nil

	default:
		return fmt.Sprintf("[%s] Unknown notification %q", timestamp, n.Type), nil
	}
}
