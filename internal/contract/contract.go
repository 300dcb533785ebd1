// Package contract implements the precondition checks used by the public
// packages of this module.
//
// A failed check is a bug in the *caller*, not a recoverable condition, so
// violations panic rather than return an error. Checks are active by default;
// build with the "contracts_off" tag to compile them down to no-ops, in which
// case calls that violate a precondition have undefined results.
package contract

import "fmt"

// Requires panics when a caller-facing precondition does not hold.
func Requires(cond bool, msg string) {
	if enabled && !cond {
		panic(fmt.Sprintf("contract violation: requires %s", msg))
	}
}

// Assert panics when an internal invariant does not hold.
func Assert(cond bool, msg string) {
	if enabled && !cond {
		panic(fmt.Sprintf("contract violation: %s", msg))
	}
}
