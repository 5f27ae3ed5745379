package domain

// Resolution is the outcome of resolving a free-text query to an entity.
// A failed resolution is a normal value, not an error: operations turn it
// into a not-found payload quoting the caller's query.
type Resolution[T any] struct {
	value T
	found bool
}

// Found wraps a resolved value.
func Found[T any](v T) Resolution[T] {
	return Resolution[T]{value: v, found: true}
}

// NotFound is the failed resolution.
func NotFound[T any]() Resolution[T] {
	return Resolution[T]{}
}

// Get returns the resolved value and whether resolution succeeded.
func (r Resolution[T]) Get() (T, bool) {
	return r.value, r.found
}

// OK reports whether resolution succeeded.
func (r Resolution[T]) OK() bool {
	return r.found
}

// Value returns the resolved value, or the zero value when not found.
func (r Resolution[T]) Value() T {
	return r.value
}
