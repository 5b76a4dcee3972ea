package order

import (
	"fmt"
	"sync"
	"time"
)

const dayLayout = "20060102"

// Numberer hands out ORD_YYYYMMDD_NNN numbers. The counter restarts each
// UTC day. Rejected checkouts still consume a number.
type Numberer struct {
	mu       sync.Mutex
	counter  int
	lastDate string
	now      func() time.Time
}

func NewNumberer(now func() time.Time) *Numberer {
	if now == nil {
		now = time.Now
	}
	return &Numberer{now: now}
}

// Next returns the next order number for today.
func (n *Numberer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	today := n.now().UTC().Format(dayLayout)
	if today != n.lastDate {
		n.counter = 0
		n.lastDate = today
	}

	n.counter++
	return fmt.Sprintf("ORD_%s_%03d", today, n.counter)
}

// Today returns the current UTC day in number format.
func (n *Numberer) Today() string {
	return n.now().UTC().Format(dayLayout)
}

// Resume continues numbering after last for day, so a restart does not
// reuse numbers already recorded.
func (n *Numberer) Resume(day string, last int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if day == n.lastDate && last <= n.counter {
		return
	}
	n.lastDate = day
	n.counter = last
}
