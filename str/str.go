package str

import (
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-seq-utils/internal/contract"
)

// Whitespace is the character set stripped by [Trim]: space, tab, newline
// and carriage return.
const Whitespace = " \t\n\r"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Transform applies fn to every character of s in order, first to last, and
// returns the result as a new string of the same character length. The
// caller's original value is never modified.
func Transform(s string, fn func(rune) rune) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = fn(r)
	}
	return string(runes)
}

// ToUpper returns s with every ASCII lowercase letter replaced by its
// uppercase form. Characters without a single-byte case mapping (digits,
// punctuation, non-ASCII) are left unchanged.
func ToUpper(s string) string {
	return Transform(s, func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	})
}

// ToLower returns s with every ASCII uppercase letter replaced by its
// lowercase form. Characters without a single-byte case mapping are left
// unchanged.
func ToLower(s string) string {
	return Transform(s, func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	})
}

// Reverse returns a new string with the characters of s in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ─────────────────────────────────────────────────────────────────────────────
// Splitting & joining
// ─────────────────────────────────────────────────────────────────────────────

// SplitOptions configures [Split].
type SplitOptions struct {
	// Delimiter separates tokens. Defaults to a single space when empty.
	Delimiter string

	// Charset treats Delimiter as a set of individual splitting characters
	// rather than one literal substring. In charset mode each split point
	// consumes exactly one character.
	Charset bool
}

// Split tokenizes s and returns its non-empty tokens in encounter order.
// Leading, trailing and consecutive delimiters never produce empty tokens.
//
//	str.Split("a b c")                                           // → ["a" "b" "c"]
//	str.Split("a::b", str.SplitOptions{Delimiter: "::"})         // → ["a" "b"]
//	str.Split("a-b_c", str.SplitOptions{Delimiter: "-_", Charset: true})
//	                                                             // → ["a" "b" "c"]
//
// Precondition: s is non-empty. Violations panic unless contract checks are
// compiled out (see internal/contract). An empty Delimiter is not a
// violation — it selects the default.
func Split(s string, opts ...SplitOptions) []string {
	var opt SplitOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Delimiter == "" {
		opt.Delimiter = " "
	}
	contract.Requires(len(s) > 0, "non-empty text")

	tokens := make([]string, 0)
	for len(s) > 0 {
		var found, width int
		if opt.Charset {
			found = strings.IndexAny(s, opt.Delimiter)
		} else {
			found = strings.Index(s, opt.Delimiter)
			width = len(opt.Delimiter)
		}
		if found == -1 {
			tokens = append(tokens, s)
			break
		}
		if opt.Charset {
			_, width = utf8.DecodeRuneInString(s[found:])
		}
		if found > 0 {
			tokens = append(tokens, s[:found])
		}
		s = s[found+width:]
	}
	return tokens
}

// Join concatenates parts into a single string, inserting sep strictly
// between consecutive elements: none before the first, none after the last.
// An empty parts slice yields "". A fixed-size array joins the same way via
// a[:].
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// Concat joins parts with no separator.
func Concat(parts []string) string {
	return Join(parts, "")
}

// ─────────────────────────────────────────────────────────────────────────────
// Trimming
// ─────────────────────────────────────────────────────────────────────────────

// Trim strips leading and trailing [Whitespace] characters from s. Interior
// whitespace is preserved. An empty or all-whitespace input trims to "".
func Trim(s string) string {
	return strings.Trim(s, Whitespace)
}
