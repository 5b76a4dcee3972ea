package customers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/brandon-nx/Food-Ordering-System/internal/validation"
)

// memberIDSpace is the number of IDs GenerateMemberID can hand out,
// 00001..99998.
const memberIDSpace = 99998

// IDSource yields random integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type IDSource interface {
	IntN(n int) int
}

// Directory is the set of registered customers keyed by member ID.
type Directory struct {
	mu        sync.Mutex
	ids       IDSource
	customers map[string]*Customer
	// generatable counts stored IDs that fall inside the generated range.
	generatable int
}

func NewDirectory(ids IDSource) *Directory {
	return &Directory{
		ids:       ids,
		customers: make(map[string]*Customer),
	}
}

// GenerateMemberID returns an unused five digit ID in 00001..99998, or
// ErrMemberIDsExhausted once every one of them is taken.
func (d *Directory) GenerateMemberID() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generateLocked()
}

func (d *Directory) generateLocked() (string, error) {
	if d.generatable >= memberIDSpace {
		return "", ErrMemberIDsExhausted
	}
	for {
		id := fmt.Sprintf("%05d", d.ids.IntN(memberIDSpace)+1)
		if _, taken := d.customers[id]; !taken {
			return id, nil
		}
	}
}

// IsExistingMemberName reports whether name is registered, ignoring case.
func (d *Directory) IsExistingMemberName(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nameTakenLocked(name, "")
}

func (d *Directory) nameTakenLocked(name, exceptID string) bool {
	for id, c := range d.customers {
		if id != exceptID && strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// Register validates the input, assigns a member ID and stores the customer.
// A duplicate name leaves the directory unchanged.
func (d *Directory) Register(name, contactNumber, deliveryAddress string) (*Customer, error) {
	name = strings.TrimSpace(name)
	contactNumber = strings.TrimSpace(contactNumber)
	deliveryAddress = strings.TrimSpace(deliveryAddress)

	if err := validation.ValidateRegistration(name, contactNumber, deliveryAddress); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.nameTakenLocked(name, "") {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateMemberName)
	}

	id, err := d.generateLocked()
	if err != nil {
		return nil, err
	}

	c := NewCustomer(id, name, contactNumber, deliveryAddress)
	d.storeLocked(c)
	return c, nil
}

// Add stores an already identified customer, e.g. one loaded from disk.
func (d *Directory) Add(c *Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.customers[c.MemberID]; taken {
		return fmt.Errorf("%s: %w", c.MemberID, ErrDuplicateMemberID)
	}
	d.storeLocked(c)
	return nil
}

func (d *Directory) storeLocked(c *Customer) {
	d.customers[c.MemberID] = c
	if isGeneratable(c.MemberID) {
		d.generatable++
	}
}

// isGeneratable reports whether id is one GenerateMemberID could return.
func isGeneratable(id string) bool {
	if len(id) != 5 {
		return false
	}
	n, err := strconv.Atoi(id)
	return err == nil && n >= 1 && n <= memberIDSpace && fmt.Sprintf("%05d", n) == id
}

func (d *Directory) Get(memberID string) (*Customer, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.customers[strings.TrimSpace(memberID)]
	return c, ok
}

// Rename changes a member's name under the same uniqueness rule as Register.
func (d *Directory) Rename(memberID, name string) error {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCustomerName(name); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.customers[memberID]
	if !ok {
		return fmt.Errorf("%s: %w", memberID, ErrCustomerNotFound)
	}
	if d.nameTakenLocked(name, memberID) {
		return fmt.Errorf("%q: %w", name, ErrDuplicateMemberName)
	}
	c.Name = name
	return nil
}

// All returns every customer sorted by member ID.
func (d *Directory) All() []*Customer {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*Customer, 0, len(d.customers))
	for _, c := range d.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}

func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.customers)
}
