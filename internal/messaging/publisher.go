package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

// Publisher handles message publishing to RabbitMQ
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishNotification publishes an envelope to the notifications fanout exchange
func (p *Publisher) PublishNotification(ctx context.Context, n *models.Notification) error {
	publishing, err := encodeNotification(n)
	if err != nil {
		return err
	}
	return p.publishMessage(ctx, NotificationsExchange, "", publishing)
}

// encodeNotification builds a persistent JSON publishing for n
func encodeNotification(n *models.Notification) (amqp091.Publishing, error) {
	body, err := n.Marshal()
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("failed to marshal message: %w", err)
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		Type:         string(n.Type),
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    n.Timestamp,
	}, nil
}

func (p *Publisher) publishMessage(ctx context.Context, exchange, routingKey string, publishing amqp091.Publishing) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(ctx); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := p.conn.Channel().PublishWithContext(
		ctx,
		exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		publishing,
	)
	if err != nil {
		p.logger.Error("message_publish_failed",
			fmt.Sprintf("Failed to publish message to exchange %s", exchange),
			"", err, map[string]interface{}{
				"exchange":    exchange,
				"routing_key": routingKey,
				"type":        publishing.Type,
			})
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("message_published",
		fmt.Sprintf("Published message to exchange %s", exchange),
		"", map[string]interface{}{
			"exchange":     exchange,
			"type":         publishing.Type,
			"message_size": len(publishing.Body),
		})

	return nil
}

// Close closes the publisher
func (p *Publisher) Close() error {
	return p.conn.Close()
}
