package cliff

import "math"

// goal selects which end of the bracket a search is narrowing toward.
type goal int

const (
	findMax goal = iota
	findMin
)

// bracketEngine is the bracket-narrowing state machine shared by the
// maximum and minimum searchers. The two only differ in which bound a
// success or an overload moves, and in whether an exponential growth
// phase is needed before bisection can begin.
//
// The engine owns its bracket exclusively; it is mutated in lock-step by
// alternating next/overloaded calls and never shared.
type bracketEngine struct {
	goal     goal
	bound    Bracket
	fidelity int
	inflight *probe
	done     bool

	// preLo holds the value Lo had immediately before it was last raised.
	// Only the maximum search reads it, to drive left filling.
	preLo int
}

func newMaxEngine(start, fidelity int) *bracketEngine {
	return &bracketEngine{
		goal:     findMax,
		bound:    Bracket{Lo: start, Unbounded: true},
		fidelity: fidelity,
		preLo:    start,
	}
}

func newMinEngine(start, fidelity int) *bracketEngine {
	return &bracketEngine{
		goal:     findMin,
		bound:    Bracket{Lo: 0, Hi: start},
		fidelity: fidelity,
	}
}

// overloaded marks the in-flight candidate as having exceeded capacity.
// With no candidate in flight there is nothing to attribute the report
// to, so it is dropped.
func (e *bracketEngine) overloaded() {
	if e.inflight != nil {
		e.inflight.overloaded = true
	}
}

// next folds the outcome of the previous candidate into the bracket and
// computes the next one. ok is false once the bracket is within fidelity,
// and stays false on every later call.
func (e *bracketEngine) next() (_ int, ok bool) {
	if e.done {
		return 0, false
	}

	if e.inflight == nil {
		// The very first candidate is the caller-supplied starting value:
		// the lower bound when growing, the upper bound when shrinking.
		first := e.bound.Lo
		if e.goal == findMin {
			first = e.bound.Hi
		}
		e.inflight = &probe{load: first}
		return first, true
	}

	e.fold()

	if e.bound.Width() <= e.fidelity {
		e.done = true
		return 0, false
	}

	n := e.candidate()
	e.inflight = &probe{load: n}
	return n, true
}

// fold resolves the in-flight candidate into the bracket.
func (e *bracketEngine) fold() {
	p := e.inflight
	e.inflight = nil

	switch e.goal {
	case findMax:
		if p.overloaded {
			// The load was too much, so it bounds the cliff from above.
			e.bound.Hi = p.load
			e.bound.Unbounded = false
		} else {
			// The system kept up, so the cliff lies at or above this load.
			e.preLo = e.bound.Lo
			e.bound.Lo = p.load
		}
	case findMin:
		if p.overloaded {
			// Too small to tolerate, so the minimum lies above it.
			e.bound.Lo = p.load
		} else {
			// Tolerated, so the minimum lies at or below it.
			e.bound.Hi = p.load
		}
	}
}

// candidate computes the next value to try from the current bracket.
func (e *bracketEngine) candidate() int {
	if e.goal == findMax && e.bound.Unbounded {
		return saturatingDouble(e.bound.Lo)
	}
	// Floor bisection, biasing toward the lower half on ties.
	return e.bound.Lo + (e.bound.Hi-e.bound.Lo)/2
}

// saturatingDouble returns 2*v, clamped to math.MaxInt so that growth can
// never wrap around and masquerade as a small load.
func saturatingDouble(v int) int {
	if v > math.MaxInt/2 {
		return math.MaxInt
	}
	return 2 * v
}
