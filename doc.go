// Package cliff finds the load at which a system under test falls over.
//
// # Overview
//
// Most good benchmarks let you vary the offered load, and give you output
// that indicates whether the system under test is keeping up: dropped
// packets, latency spikes, error rates, or whatever fits the problem
// domain. Given that, you usually want to know how far you can push the
// system before it falls over. This package provides one answer:
// exponential search. First, double the offered load until the system
// falls over; as long as it keeps up, each tolerated load raises the
// lower bound of the estimate. The first load the system cannot keep up
// with gives an upper bound. Then binary search between the two bounds,
// tightening the bracket until it reaches the fidelity you want.
//
// # Searchers
//
// The package ships three search strategies behind one contract,
// [CliffSearcher]:
//
//   - [ExponentialSearcher] finds the maximum supported load by
//     exponential growth followed by bisection.
//   - [BinaryMinSearcher] finds the minimum tolerable value of a
//     parameter by bisection between 0 and a starting upper bound. No
//     growth phase is needed, since 0 already bounds the minimum.
//   - [LoadList] walks a user-supplied list of loads in order, stopping
//     at the first overload. Use it to support manual override.
//
// # Quick Start
//
// Drive a searcher directly:
//
//	loads := cliff.NewExponential(500)
//	for load, ok := loads.Next(); ok; load, ok = loads.Next() {
//	    if !benchmark(load) {
//	        loads.Overloaded()
//	    }
//	}
//
//	supported := loads.Estimate()
//	fmt.Printf("maximum supported load is in %v\n", supported)
//
// Stepping through the search bit by bit:
//
//	load := cliff.NewExponential(500)
//	// The initial lower bound is the first load tried.
//	load.Next() // 500, true
//	// No overload was reported, so the load doubles.
//	load.Next() // 1000, true
//	// Same thing again.
//	load.Next() // 2000, true
//	// Say the system did not keep up with that:
//	load.Overloaded()
//	// Now the cliff lies between 1000 (highest supported load) and
//	// 2000 (lowest unsupported load), so bisection tries the middle.
//	load.Next() // 1500, true
//	// That succeeded, so the cliff lies in [1500, 2000), and so on,
//	// until the bracket width reaches the fidelity (default: half the
//	// starting load, here 250).
//	load.Next() // 1750, true
//	load.Overloaded()
//	load.Next() // 0, false
//	load.Estimate() // [1500, 1750)
//
// Dynamically switching between search and a user-provided list:
//
//	var loads cliff.CliffSearcher
//	if len(userList) == 0 {
//	    loads = cliff.NewExponential(500)
//	} else {
//	    loads = cliff.NewLoadList(userList...)
//	}
//	// from here, the strategy is the same
//
// # The Runner
//
// [Runner] packages the drive loop: it alternates requesting a candidate
// from the searcher, probing the system at that load, and reporting the
// outcome, with slog progress logging and pluggable [Observer] fan-out
// ([Metrics] exports the narrowing bracket to Prometheus). [NewRateProbe]
// builds a probe that offers each candidate as an operation rate across a
// worker pool and judges overload by error rate or P99 latency.
//
//	probe := cliff.NewRateProbe(op, cliff.DefaultProbeConfig())
//	runner := &cliff.Runner{
//	    Searcher: cliff.NewExponential(500),
//	    Probe:    probe,
//	}
//	bracket, err := runner.Run(ctx)
//
// # Caller Contract
//
// Each searcher is consumed by exactly one caller in strict alternation;
// Overloaded must be called, if at all, between a Next call and the next
// one. The searchers assume the system is monotone: once a load is
// reported overloaded, no load at or above it may later be reported
// healthy (reversed for the min search). They do not verify this.
//
// # Testing
//
// The exported assertion helpers validate search behavior against a
// decision oracle:
//
//	func TestMySearchSetup(t *testing.T) {
//	    s := cliff.NewExponentialUntil(1000, 100)
//	    steps := cliff.AssertMaxNarrowing(t, s, func(load int) bool {
//	        return load > 12345
//	    }, cliff.DefaultAssertionConfig())
//	    cliff.AssertFirstValue(t, steps, 1000)
//	}
package cliff
