package common

// Cache wraps a value and hands it out at most once per mutation.
// Static entities use it so their instance data is uploaded once and then skipped.
type Cache[T any] struct {
	content  T
	isCached bool
}

// NewCache wraps content in a Cache that has not been emitted yet.
//
// Parameters:
//   - content: the initial value
//
// Returns:
//   - *Cache[T]: the new cache
func NewCache[T any](content T) *Cache[T] {
	return &Cache[T]{content: content}
}

// Get returns a mutable handle to the wrapped value and marks it dirty,
// whether or not the caller actually changes it.
func (c *Cache[T]) Get() *T {
	c.isCached = false
	return &c.content
}

// Peek returns a copy of the wrapped value without touching the dirty flag.
func (c *Cache[T]) Peek() T {
	return c.content
}

// Cache returns a copy of the wrapped value if it has changed since the last call.
//
// Returns:
//   - T: the wrapped value, or the zero value when unchanged
//   - bool: true exactly once after construction or after each Get
func (c *Cache[T]) Cache() (T, bool) {
	if c.isCached {
		var zero T
		return zero, false
	}
	c.isCached = true
	return c.content, true
}
