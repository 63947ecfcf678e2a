package cliff

// ExponentialSearcher determines the maximum supported load for a system
// by exponential search: it doubles the offered load from a starting
// value until the system falls over, then bisects between the highest
// supported and lowest unsupported loads until the bracket is within the
// requested fidelity.
//
// See the package documentation for a step-by-step walkthrough.
type ExponentialSearcher struct {
	eng      *bracketEngine
	fillLeft bool
}

var _ CliffSearcher = (*ExponentialSearcher)(nil)

// NewExponential starts a load search at start, ending when the maximum
// load has been determined to within a bracket of width start / 2.
func NewExponential(start int) *ExponentialSearcher {
	return NewExponentialUntil(start, start/2)
}

// NewExponentialUntil starts a load search at start, ending when the
// maximum load has been determined to within a bracket of width fidelity.
func NewExponentialUntil(start, fidelity int) *ExponentialSearcher {
	return &ExponentialSearcher{eng: newMaxEngine(start, fidelity)}
}

// FillLeft makes the searcher sample extra points just before the cliff
// once the search itself has converged.
//
// If the system under test supports, say, eight million operations per
// second and the search starts at 1M, the searcher samples 1M, 2M, 4M,
// 8M, 16M, then bisects from the right through 12M, 10M, and 9M before
// settling on 8M as the lower bound. That is correct, but leaves a gap
// between the 4M and 8M samples that makes plots of the run hard to read
// right where the system approaches its capacity. With filling enabled,
// the searcher goes on to yield 6M and 7M after converging.
//
// Fill samples are purely illustrative: overload reports during filling
// are ignored, and the estimate is unaffected. Filling respects the
// searcher's fidelity and must be enabled before the first call to Next.
func (s *ExponentialSearcher) FillLeft() {
	s.fillLeft = true
}

// Next yields the next load value to try, or ok=false once the search
// (and any left filling) has finished.
func (s *ExponentialSearcher) Next() (int, bool) {
	if n, ok := s.eng.next(); ok {
		return n, true
	}

	if s.fillLeft {
		// The bracket converged to eng.bound, but there may be a gap
		// between the last lower bound before the final raise and the
		// converged Lo. Bisect across it until it is within fidelity.
		gap := s.eng.bound.Lo - s.eng.preLo
		if gap > s.eng.fidelity {
			n := s.eng.preLo + gap/2
			s.eng.preLo = n
			return n, true
		}
		s.fillLeft = false
	}

	return 0, false
}

// Overloaded reports that the system could not keep up with the load most
// recently yielded by Next.
func (s *ExponentialSearcher) Overloaded() {
	s.eng.overloaded()
}

// Estimate gives the current bracket for the maximum supported load. Lo
// is the highest load known to be supported; Hi the lowest known not to
// be, or unbounded while overload has not yet been observed.
func (s *ExponentialSearcher) Estimate() Bracket {
	return s.eng.bound
}
