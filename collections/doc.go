// Package collections provides a generic, immutable-by-default resizable
// sequence type, [Collection], used as the richer counterpart to plain
// slices elsewhere in this module.
//
// A Collection owns its elements: constructors copy in, [Collection.All]
// copies out, and every transforming method returns a new Collection. This
// makes values safe to share across goroutines for reading and prevents
// aliasing bugs in pipelines:
//
//	joined := collections.From(str.Split("a b c")).
//	    Reverse().
//	    Implode("-", func(s string) string { return s })
//	// → "c-b-a"
//
// Operations that change the element type are package-level functions
// ([Map]), since Go methods cannot introduce new type parameters.
package collections
