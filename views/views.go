// Package views holds the state of the booking client's screens.
//
// Each screen is a plain state struct changed only through its Reduce function, which never
// mutates its input. Fetches are tagged with a Token; a response whose token is no longer the
// pending one, or that arrives after the screen was closed, leaves the state untouched.
package views

// Token identifies one fetch issued by a view.
type Token uint64

// accepts reports whether a response tagged t may still be applied.
func accepts(pending, t Token, closed bool) bool {
	return !closed && pending != 0 && t == pending
}
