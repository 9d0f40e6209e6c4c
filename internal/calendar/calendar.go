package calendar

import (
	"cmp"
	"slices"

	"eventcal/internal/model"
)

// DefaultCapacity is both the initial number of slots and the growth step.
const DefaultCapacity = 4

// Order selects a listing view.
type Order int

const (
	// OrderCanonical lists events in storage order.
	OrderCanonical Order = iota
	// OrderDate lists by date, then timeslot.
	OrderDate
	// OrderCampus lists by location declaration order.
	OrderCampus
	// OrderDepartment lists by contact department declaration order.
	OrderDepartment
)

// Calendar holds the admitted events. No two stored events are Equal.
//
// Storage is a fixed set of slots that grows by a constant step as soon as
// an insertion fills the last one, so there is always a free slot for the
// next Add. Listings sort copies and never reorder storage.
//
// A Calendar is owned by a single goroutine.
type Calendar struct {
	slots []model.Event
	n     int
	step  int
}

type Option func(*Calendar)

// WithInitialCapacity sets the initial slot count and growth step.
// Values below 1 are ignored.
func WithInitialCapacity(n int) Option {
	return func(c *Calendar) {
		if n > 0 {
			c.step = n
		}
	}
}

func New(opts ...Option) *Calendar {
	c := &Calendar{step: DefaultCapacity}
	for _, opt := range opts {
		opt(c)
	}
	c.slots = make([]model.Event, c.step)
	return c
}

// Count returns the number of admitted events.
func (c *Calendar) Count() int {
	return c.n
}

// Capacity returns the number of storage slots.
func (c *Calendar) Capacity() int {
	return len(c.slots)
}

// Contains reports whether an Equal event is stored.
func (c *Calendar) Contains(e model.Event) bool {
	return c.find(e) >= 0
}

func (c *Calendar) find(e model.Event) int {
	for i := 0; i < c.n; i++ {
		if c.slots[i].Equal(e) {
			return i
		}
	}
	return -1
}

// Add stores e in the first free slot. It returns false, leaving the
// calendar untouched, if an Equal event is already stored.
func (c *Calendar) Add(e model.Event) bool {
	if c.Contains(e) {
		return false
	}
	c.slots[c.n] = e
	c.n++
	if c.n == len(c.slots) {
		c.grow()
	}
	return true
}

func (c *Calendar) grow() {
	next := make([]model.Event, len(c.slots)+c.step)
	copy(next, c.slots[:c.n])
	c.slots = next
}

// Remove deletes the stored event Equal to e and closes the gap, keeping
// the relative order of the rest. It returns false if none is stored.
func (c *Calendar) Remove(e model.Event) bool {
	i := c.find(e)
	if i < 0 {
		return false
	}
	copy(c.slots[i:c.n-1], c.slots[i+1:c.n])
	c.n--
	c.slots[c.n] = model.Event{}
	return true
}

// Snapshot returns a copy of the stored events in canonical order.
func (c *Calendar) Snapshot() []model.Event {
	return slices.Clone(c.slots[:c.n])
}

// List returns every stored event in the requested order, or ErrEmpty.
// Ties keep canonical order.
func (c *Calendar) List(order Order) ([]model.Event, error) {
	if c.n == 0 {
		return nil, ErrEmpty
	}
	events := c.Snapshot()
	switch order {
	case OrderDate:
		slices.SortStableFunc(events, model.CompareEvents)
	case OrderCampus:
		slices.SortStableFunc(events, func(a, b model.Event) int {
			return cmp.Compare(a.Location, b.Location)
		})
	case OrderDepartment:
		slices.SortStableFunc(events, func(a, b model.Event) int {
			return cmp.Compare(a.Contact.Department, b.Contact.Department)
		})
	}
	return events, nil
}

func (c *Calendar) ListByDate() ([]model.Event, error) {
	return c.List(OrderDate)
}

func (c *Calendar) ListByCampus() ([]model.Event, error) {
	return c.List(OrderCampus)
}

func (c *Calendar) ListByDepartment() ([]model.Event, error) {
	return c.List(OrderDepartment)
}
