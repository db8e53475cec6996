package core

// Collection is an ordered, index-addressable container that owns its
// elements by value. Removal swaps the last element into the freed slot, so
// the relative order of the remaining elements is not preserved.
//
// Callers that remove while iterating must walk from the highest index down
// to zero: the element swapped into slot i has already been visited.
type Collection[T any] struct {
	items []T
}

// NewCollection creates an empty collection with room for capacity elements.
func NewCollection[T any](capacity int) *Collection[T] {
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// Push appends an element. Growth failure is a runtime fatal error.
func (c *Collection[T]) Push(v T) {
	c.items = append(c.items, v)
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns a pointer to the element at index i for in-place mutation.
// The pointer is invalidated by the next Push or Remove.
func (c *Collection[T]) At(i int) *T {
	return &c.items[i]
}

// Remove drops the element at index i.
func (c *Collection[T]) Remove(i int) {
	last := len(c.items) - 1
	c.items[i] = c.items[last]
	var zero T
	c.items[last] = zero
	c.items = c.items[:last]
}

// Clear drops every element, keeping the allocated capacity.
func (c *Collection[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

// Items returns a snapshot copy of the elements.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
