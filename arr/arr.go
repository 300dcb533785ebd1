package arr

import "github.com/hasbyte1/go-seq-utils/collections"

// ─────────────────────────────────────────────────────────────────────────────
// Measurement
// ─────────────────────────────────────────────────────────────────────────────

// Length returns the element count of items. It exists for API symmetry with
// the mutating helpers below; a fixed-size array reports its declared size
// regardless of contents:
//
//	var a [5]int
//	arr.Length(a[:]) // → 5
func Length[T any](items []T) int {
	return len(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses the order of items in place by swapping element i with
// element n-1-i. It never changes the length, and has no effect on sequences
// of zero or one element.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// Transform overwrites every element with fn(element), applying fn in index
// order from first to last. The order is observable only when fn has side
// effects.
func Transform[T any](items []T, fn func(T) T) {
	for i, item := range items {
		items[i] = fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying & conversion
// ─────────────────────────────────────────────────────────────────────────────

// Reversed returns a reversed copy of items, leaving the input unchanged.
func Reversed[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// MapTo applies fn to each element and returns the results as a new slice,
// leaving the input unchanged. Unlike [Transform] the result type may differ
// from the element type.
func MapTo[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// ToSlice returns an independent resizable copy of items: same elements,
// same order. Mutating the copy never affects the original sequence.
func ToSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// ToCollection converts items into a [collections.Collection], the
// resizable-sequence type of this module. The input is copied, not aliased.
func ToCollection[T any](items []T) *collections.Collection[T] {
	return collections.From(items)
}
