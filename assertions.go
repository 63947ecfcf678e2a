package cliff

import "testing"

// Step records one probe of a driven search: the load that was produced
// and the outcome that was reported for it.
type Step struct {
	Load       int
	Overloaded bool
}

// Drive runs a searcher to completion against a decision function,
// reporting each load for which overloadedAt returns true. It gives up
// after maxSteps produce calls; terminated reports whether the searcher
// finished on its own.
//
// overloadedAt must be monotone (once a load is overloaded, every larger
// load is too; reversed for min searchers) for the bracket semantics to
// hold. The searchers assume this and do not verify it.
func Drive(s CliffSearcher, overloadedAt func(load int) bool, maxSteps int) (steps []Step, terminated bool) {
	for i := 0; i < maxSteps; i++ {
		load, ok := s.Next()
		if !ok {
			return steps, true
		}
		over := overloadedAt(load)
		if over {
			s.Overloaded()
		}
		steps = append(steps, Step{Load: load, Overloaded: over})
	}
	return steps, false
}

// AssertionConfig contains limits for the search property assertions.
type AssertionConfig struct {
	// MaxSteps bounds how many produce calls a search may take before the
	// assertion fails. Exponential growth plus bisection needs at most
	// O(log(cliff)) steps, so a small multiple of 64 is plenty.
	MaxSteps int
}

// DefaultAssertionConfig returns conservative limits.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxSteps: 256,
	}
}

// AssertMaxNarrowing drives a fresh max-direction searcher to completion
// and verifies the bracket only ever tightens: Lo never decreases, Hi
// never increases, and an unbounded Hi never reappears once bounded.
func AssertMaxNarrowing(t *testing.T, s CliffSearcher, overloadedAt func(int) bool, cfg AssertionConfig) []Step {
	t.Helper()

	prev := s.Estimate()
	var steps []Step
	for i := 0; i < cfg.MaxSteps; i++ {
		load, ok := s.Next()
		if !ok {
			AssertStableAfterTermination(t, s)
			return steps
		}
		over := overloadedAt(load)
		if over {
			s.Overloaded()
		}
		steps = append(steps, Step{Load: load, Overloaded: over})

		est := s.Estimate()
		if est.Lo < prev.Lo {
			t.Errorf("lower bound moved backwards: %v after %v (step %d, load %d)", est, prev, i, load)
		}
		if !prev.Unbounded && (est.Unbounded || est.Hi > prev.Hi) {
			t.Errorf("upper bound moved backwards: %v after %v (step %d, load %d)", est, prev, i, load)
		}
		prev = est
	}

	t.Errorf("search did not terminate within %d steps; estimate %v", cfg.MaxSteps, s.Estimate())
	return steps
}

// AssertMinNarrowing is AssertMaxNarrowing with the bracket direction
// reversed, starting from [0, start).
func AssertMinNarrowing(t *testing.T, s CliffSearcher, overloadedAt func(int) bool, cfg AssertionConfig) []Step {
	t.Helper()

	prev := s.Estimate()
	var steps []Step
	for i := 0; i < cfg.MaxSteps; i++ {
		load, ok := s.Next()
		if !ok {
			AssertStableAfterTermination(t, s)
			return steps
		}
		over := overloadedAt(load)
		if over {
			s.Overloaded()
		}
		steps = append(steps, Step{Load: load, Overloaded: over})

		est := s.Estimate()
		if est.Lo < prev.Lo {
			t.Errorf("lower bound moved backwards: %v after %v (step %d, load %d)", est, prev, i, load)
		}
		if est.Hi > prev.Hi {
			t.Errorf("upper bound moved backwards: %v after %v (step %d, load %d)", est, prev, i, load)
		}
		prev = est
	}

	t.Errorf("search did not terminate within %d steps; estimate %v", cfg.MaxSteps, s.Estimate())
	return steps
}

// AssertFirstValue verifies the first produced value was the configured
// starting value.
func AssertFirstValue(t *testing.T, steps []Step, want int) {
	t.Helper()

	if len(steps) == 0 {
		t.Fatalf("no values were produced; want first value %d", want)
	}
	if steps[0].Load != want {
		t.Errorf("first value = %d, want %d", steps[0].Load, want)
	}
}

// AssertStableAfterTermination verifies that a terminated searcher stays
// terminated and keeps a fixed estimate, even in the face of further
// overload reports.
func AssertStableAfterTermination(t *testing.T, s CliffSearcher) {
	t.Helper()

	final := s.Estimate()
	for i := 0; i < 3; i++ {
		if v, ok := s.Next(); ok {
			t.Errorf("terminated searcher produced %d on extra call %d", v, i)
		}
		s.Overloaded()
		if got := s.Estimate(); got != final {
			t.Errorf("estimate drifted after termination: got %v, want %v", got, final)
		}
	}
}
