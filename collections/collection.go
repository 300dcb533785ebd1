package collections

import (
	"encoding/json"

	"github.com/hasbyte1/go-seq-utils/str"
)

// Collection is a generic, immutable-by-default resizable sequence of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. Construction and extraction both copy, so
// a Collection never aliases caller-owned memory: mutating a slice after
// [From], or the slice returned by [Collection.All], does not affect the
// collection.
//
//	c := collections.New("a", "b", "c")
//	r := c.Reverse()      // c still ["a" "b" "c"], r is ["c" "b" "a"]
//
// Go generics do not allow methods to introduce new type parameters, so the
// type-changing transform is the package-level [Map] function.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := json.Marshal(c.items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new Collection with the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Collection[T]{items: out}
}

// Each calls fn(item, index) for every item in order and returns the
// collection unchanged, allowing side-effecting steps inside a chain.
func (c *Collection[T]) Each(fn func(T, int)) *Collection[T] {
	for i, item := range c.items {
		fn(item, i)
	}
	return c
}

// Transform applies fn to every item, first to last, and returns the results
// as a new Collection. The receiver is unchanged.
func (c *Collection[T]) Transform(fn func(T) T) *Collection[T] {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[T]{items: out}
}

// Implode joins all items into a string using sep, converting each item with
// fn. The separator appears strictly between consecutive items.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return str.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level functions
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item and returns a new Collection[U]. Go methods
// cannot introduce their own type parameters, so the type-changing transform
// lives here.
//
//	lengths := collections.Map(collections.New("a", "bb"),
//	    func(s string) int { return len(s) })
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[U]{items: out}
}

// Join concatenates a collection of strings, inserting sep strictly between
// consecutive items. An empty collection yields "".
func Join(c *Collection[string], sep string) string {
	return str.Join(c.items, sep)
}
