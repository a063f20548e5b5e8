package store

import (
	"errors"
	"sync"
)

// ErrNotFound indicates the requested identifier does not resolve in the
// targeted collection.
var ErrNotFound = errors.New("record not found")

// Collection holds one entity type as an ordered, mutable sequence. Every
// read returns a copy produced by the clone function so callers can never
// alias the stored records; the only mutation path is through the collection
// methods themselves.
type Collection[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) int
	setID func(*T, int)
	clone func(T) T
}

// NewCollection constructs an empty collection with the given identifier
// accessors and clone function.
func NewCollection[T any](id func(T) int, setID func(*T, int), clone func(T) T) *Collection[T] {
	return &Collection[T]{id: id, setID: setID, clone: clone}
}

// Seed replaces the collection contents with copies of the given records.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, c.clone(item))
	}
}

// FindAll returns copies of every record in insertion order.
func (c *Collection[T]) FindAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.clone(item))
	}
	return out
}

// Filter returns copies of the records matching the predicate, preserving
// insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// Find returns a copy of the record with the given identifier.
func (c *Collection[T]) Find(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return c.clone(item), nil
		}
	}

	var zero T
	return zero, ErrNotFound
}

// Insert stores a copy of the record under a freshly assigned identifier and
// returns the stored value. Identifiers are assigned as max(live ids, 0)+1
// at insertion time, so the assignment order follows completion order, not
// request order.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, existing := range c.items {
		if id := c.id(existing); id > maxID {
			maxID = id
		}
	}

	stored := c.clone(item)
	c.setID(&stored, maxID+1)
	c.items = append(c.items, stored)
	return c.clone(stored)
}

// InsertWithID stores a copy of the record keeping the identifier it already
// carries. Used by collections whose identifiers come from an external
// counter.
func (c *Collection[T]) InsertWithID(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := c.clone(item)
	c.items = append(c.items, stored)
	return c.clone(stored)
}

// Replace swaps the record with the given identifier for a copy of the
// provided value, keeping its position in the sequence. The stored
// identifier always wins over whatever the replacement carries.
func (c *Collection[T]) Replace(id int, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if c.id(existing) == id {
			stored := c.clone(item)
			c.setID(&stored, id)
			c.items[i] = stored
			return c.clone(stored), nil
		}
	}

	var zero T
	return zero, ErrNotFound
}

// Remove deletes the record with the given identifier and returns a copy of
// the removed value. Removing an absent identifier fails; delete is not
// idempotent.
func (c *Collection[T]) Remove(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if c.id(existing) == id {
			removed := c.clone(existing)
			c.items = append(c.items[:i], c.items[i+1:]...)
			return removed, nil
		}
	}

	var zero T
	return zero, ErrNotFound
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// MaxID returns the highest identifier currently stored, or zero when empty.
func (c *Collection[T]) MaxID() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, item := range c.items {
		if id := c.id(item); id > maxID {
			maxID = id
		}
	}
	return maxID
}
