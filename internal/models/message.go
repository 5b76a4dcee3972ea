package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotificationType discriminates notification payloads
type NotificationType string

const (
	NotificationOrderPlaced NotificationType = "order_placed"
	NotificationLowStock    NotificationType = "low_stock"
)

// Notification is the envelope published to the notifications exchange
type Notification struct {
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Payload   json.RawMessage  `json:"payload"`
}

// OrderLineMessage is one line of a placed order
type OrderLineMessage struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderPlacedMessage announces a committed order
type OrderPlacedMessage struct {
	OrderNumber string             `json:"order_number"`
	MemberID    string             `json:"member_id"`
	Customer    string             `json:"customer_name"`
	Restaurant  string             `json:"restaurant"`
	Items       []OrderLineMessage `json:"items"`
	Offers      []string           `json:"offers,omitempty"`
	Subtotal    string             `json:"subtotal"`
	TotalAmount string             `json:"total_amount"`
	PlacedAt    time.Time          `json:"placed_at"`
}

// StockAlertMessage reports menu items at or below the low-stock threshold
type StockAlertMessage struct {
	Restaurant string `json:"restaurant"`
	ItemName   string `json:"item_name"`
	Remaining  int    `json:"remaining"`
	Threshold  int    `json:"threshold"`
}

// NewNotification wraps payload in an envelope of the given type.
func NewNotification(kind NotificationType, payload interface{}) (*Notification, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}
	return &Notification{
		Type:      kind,
		Timestamp: time.Now().UTC(),
		Payload:   body,
	}, nil
}

// Decode unmarshals the payload into v.
func (n *Notification) Decode(v interface{}) error {
	if err := json.Unmarshal(n.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", n.Type, err)
	}
	return nil
}

// Marshal encodes the envelope as JSON.
func (n *Notification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

// ParseNotification decodes an envelope received from the broker.
func ParseNotification(body []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, fmt.Errorf("failed to parse notification: %w", err)
	}
	if n.Type == "" {
		return nil, fmt.Errorf("failed to parse notification: missing type")
	}
	return &n, nil
}
