// Package str provides standalone helper functions for string values:
// splitting, joining, trimming, case conversion, reversal and per-character
// transformation.
//
// All functions are pure with respect to their inputs — strings are passed
// and returned by value, so a caller's original is never modified:
//
//	tokens := str.Split("a,b,,c", str.SplitOptions{Delimiter: ","}) // → ["a" "b" "c"]
//	line   := str.Join([]string{"a", "b", "c"}, "-")                // → "a-b-c"
//	clean  := str.Trim("  hi there  ")                              // → "hi there"
//	loud   := str.ToUpper("MixEd123")                               // → "MIXED123"
//
// # Split semantics
//
// [Split] never emits empty tokens: leading, trailing and consecutive
// delimiters are collapsed. With [SplitOptions].Charset set, the delimiter is
// a set of individual splitting characters instead of one literal substring.
// As a consequence, Join is the inverse of Split only for inputs free of
// leading/trailing/consecutive delimiters — empty tokens are lost otherwise.
//
// # Case conversion
//
// [ToUpper] and [ToLower] apply the single-byte ASCII case mapping only;
// characters outside that mapping pass through unchanged.
//
// # Preconditions
//
// [Split] requires non-empty input text. A violation is a caller bug and
// panics; building with the "contracts_off" tag compiles the check away, in
// which case the result of a violating call is unspecified. No function in
// this package returns an error.
package str
