// Package customers keeps registered members, their order history and the
// flat file they are saved to.
package customers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
)

var (
	ErrMalformedRecord     = errors.New("malformed customer record")
	ErrDuplicateMemberName = errors.New("member name already registered")
	ErrDuplicateMemberID   = errors.New("member id already registered")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrMemberIDsExhausted  = errors.New("no member ids left")
)

const recordFields = 4

// Customer is a registered member. Order history lives in memory only.
type Customer struct {
	MemberID        string
	Name            string
	ContactNumber   string
	DeliveryAddress string

	mu      sync.Mutex
	history []*restaurant.Order
}

func NewCustomer(memberID, name, contactNumber, deliveryAddress string) *Customer {
	return &Customer{
		MemberID:        memberID,
		Name:            name,
		ContactNumber:   contactNumber,
		DeliveryAddress: deliveryAddress,
	}
}

// AddOrder appends a committed order to the history.
func (c *Customer) AddOrder(o *restaurant.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, o)
}

// OrderHistory returns the orders placed so far, oldest first.
func (c *Customer) OrderHistory() []*restaurant.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*restaurant.Order, len(c.history))
	copy(out, c.history)
	return out
}

// Serialize renders memberId,name,contactNumber,deliveryAddress.
func (c *Customer) Serialize() string {
	return strings.Join([]string{c.MemberID, c.Name, c.ContactNumber, c.DeliveryAddress}, ",")
}

// Deserialize parses a line written by Serialize.
func Deserialize(line string) (*Customer, error) {
	parts := strings.Split(line, ",")
	if len(parts) != recordFields {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, recordFields, len(parts))
	}
	if parts[0] == "" {
		return nil, fmt.Errorf("%w: empty member id", ErrMalformedRecord)
	}
	return NewCustomer(parts[0], parts[1], parts[2], parts[3]), nil
}
