package cliff

// BinaryMinSearcher determines the minimum tolerable value of a system
// parameter by binary search between 0 and a caller-supplied starting
// value. No exponential phase is needed, since 0 already bounds the
// minimum from below.
//
// The starting value is the first candidate probed, not assumed good: if
// it is reported overloaded the bracket collapses immediately to a
// zero-width estimate at the starting value.
type BinaryMinSearcher struct {
	eng *bracketEngine
}

var _ CliffSearcher = (*BinaryMinSearcher)(nil)

// NewBinaryMin starts a minimum search from the initial upper bound
// start, ending when the minimum has been determined to within a bracket
// of width fidelity.
func NewBinaryMin(start, fidelity int) *BinaryMinSearcher {
	return &BinaryMinSearcher{eng: newMinEngine(start, fidelity)}
}

// Next yields the next parameter value to try, or ok=false once the
// search has finished.
func (s *BinaryMinSearcher) Next() (int, bool) {
	return s.eng.next()
}

// Overloaded reports that the system could not keep up with the value
// most recently yielded by Next.
func (s *BinaryMinSearcher) Overloaded() {
	s.eng.overloaded()
}

// Estimate gives the current bracket for the minimum tolerable value. Hi
// is the lowest value known to be tolerated; Lo the highest known not to
// be, or 0.
func (s *BinaryMinSearcher) Estimate() Bracket {
	return s.eng.bound
}
