package cliff

// LoadList walks a caller-supplied sequence of load values in order,
// sharing the reporting contract of the adaptive searchers. It stops
// permanently at the first reported overload, or when the sequence runs
// out. Use it to support manual override of the search strategy: callers
// that hold a CliffSearcher can be handed a LoadList instead of an
// ExponentialSearcher without changing their loop.
type LoadList struct {
	bound    Bracket
	inflight *probe
	done     bool
	pull     func() (int, bool)
}

var _ CliffSearcher = (*LoadList)(nil)

// NewLoadList walks the given load values in order.
func NewLoadList(loads ...int) *LoadList {
	i := 0
	return LoadListFunc(func() (int, bool) {
		if i >= len(loads) {
			return 0, false
		}
		n := loads[i]
		i++
		return n, true
	})
}

// LoadListFunc walks the values produced by pull, consuming them lazily,
// one per call to Next. pull must not be shared with other consumers.
func LoadListFunc(pull func() (int, bool)) *LoadList {
	return &LoadList{
		bound: Bracket{Unbounded: true},
		pull:  pull,
	}
}

// Next yields the next load value from the list, or ok=false once an
// overload has been reported or the list is exhausted.
func (l *LoadList) Next() (int, bool) {
	if l.inflight != nil {
		p := l.inflight
		l.inflight = nil
		if p.overloaded {
			l.bound.Hi = p.load
			l.bound.Unbounded = false
			l.done = true
		} else {
			l.bound.Lo = p.load
		}
	}

	if l.done {
		return 0, false
	}

	n, ok := l.pull()
	if !ok {
		// Exhausted without ever overloading: the cliff was not found, and
		// the estimate stays unbounded above the last value tried.
		l.done = true
		return 0, false
	}
	l.inflight = &probe{load: n}
	return n, true
}

// Overloaded reports that the system could not keep up with the load most
// recently yielded by Next.
func (l *LoadList) Overloaded() {
	if l.inflight != nil {
		l.inflight.overloaded = true
	}
}

// Estimate gives the bracket [last-known-good, last-known-bad), or an
// unbounded bracket above the last value if no overload has occurred.
func (l *LoadList) Estimate() Bracket {
	return l.bound
}
