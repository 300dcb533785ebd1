// Package arr provides standalone, generic helper functions over fixed-length
// sequences of any element type.
//
// All helpers operate on plain []T values — address a fixed-size Go array as
// a slice of its full length:
//
//	var a = [4]int{1, 2, 3, 4}
//	arr.Reverse(a[:])              // a is now [4 3 2 1], length unchanged
//	arr.Transform(a[:], double)    // in place, first to last
//	v := arr.ToSlice(a[:])         // independent resizable copy
//
// [Reverse] and [Transform] mutate through the slice and never change its
// length. [Reversed], [MapTo], [ToSlice] and [ToCollection] allocate a new
// sequence and leave the input untouched. None of the helpers retain state
// between calls, so they are safe to use concurrently on distinct data.
package arr
