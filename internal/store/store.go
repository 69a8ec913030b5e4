// Package store holds the client-side collection cache mutated after
// create, update, and delete round trips.
package store

// Collection caches a list of rows keyed by an id function. Writes
// mutate only this cache; there is no refetch after a mutation.
type Collection[T any] struct {
	items []T
	id    func(T) string
}

// NewCollection creates an empty collection keyed by id.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{items: []T{}, id: id}
}

// Items returns the cached rows.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len returns the number of cached rows.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Set replaces the whole cache, normally after a fresh fetch.
func (c *Collection[T]) Set(items []T) {
	if items == nil {
		items = []T{}
	}
	c.items = items
}

// Insert prepends a newly created row so it appears first in the list.
func (c *Collection[T]) Insert(item T) {
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the row with a matching id in place, preserving order.
// A row that is not present is left alone and Replace reports false.
func (c *Collection[T]) Replace(item T) bool {
	target := c.id(item)
	for i, existing := range c.items {
		if c.id(existing) == target {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove drops the row with the given id, reporting whether it was found.
func (c *Collection[T]) Remove(id string) bool {
	for i, existing := range c.items {
		if c.id(existing) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the row with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, existing := range c.items {
		if c.id(existing) == id {
			return existing, true
		}
	}
	var zero T
	return zero, false
}
