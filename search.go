package cliff

import (
	"fmt"
	"math"
)

// CliffSearcher is implemented by every search strategy in this package.
//
// A searcher is consumed by exactly one caller in strict alternation:
// request a candidate with Next, apply it to the system under test,
// optionally call Overloaded, then request the next candidate. Calling
// Overloaded outside that window attributes the report to the wrong
// candidate, so don't.
type CliffSearcher interface {
	// Next yields the next load value to try. The second return value is
	// false once the search has terminated, and stays false forever after.
	Next() (int, bool)

	// Overloaded indicates that the system could not keep up with the load
	// most recently yielded by Next. It only affects the following Next
	// call, never retroactively. Calling it more than once per candidate,
	// or when no candidate is pending, has no effect.
	Overloaded()

	// Estimate gives the current best-known bracket for the cliff. It is
	// valid at any point in the search and stable after termination.
	Estimate() Bracket
}

// Bracket is a half-open interval [Lo, Hi) of load values known to contain
// the cliff. For a maximum search Lo is the highest known-good load and Hi
// the lowest known-bad one; for a minimum search the roles are reversed.
type Bracket struct {
	Lo int
	Hi int

	// Unbounded reports that no upper limit is known yet. Hi carries no
	// meaning while it is set.
	Unbounded bool
}

// Width returns Hi - Lo. While the bracket is unbounded it returns the
// distance from Lo to the largest representable load instead, so that a
// search whose growth has saturated still converges.
func (b Bracket) Width() int {
	if b.Unbounded {
		return math.MaxInt - b.Lo
	}
	return b.Hi - b.Lo
}

// Contains reports whether v lies inside the bracket.
func (b Bracket) Contains(v int) bool {
	if v < b.Lo {
		return false
	}
	return b.Unbounded || v < b.Hi
}

// String renders the bracket in interval notation, e.g. "[3250, 3500)".
func (b Bracket) String() string {
	if b.Unbounded {
		return fmt.Sprintf("[%d, +inf)", b.Lo)
	}
	return fmt.Sprintf("[%d, %d)", b.Lo, b.Hi)
}

// probe records a candidate that has been handed to the caller together
// with its reported outcome. Keeping the value and the flag in one record
// means there is no way to mark an outcome without a pending candidate.
type probe struct {
	load       int
	overloaded bool
}
