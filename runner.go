package cliff

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Probe applies one load level to the system under test and reports
// whether the system kept up. How load is applied and what "keeping up"
// means are entirely up to the caller; NewRateProbe provides a ready-made
// implementation for rate-driven operations.
//
// Probes run one at a time, in the strict alternation the searchers
// require, so they need not be safe for concurrent use.
type Probe func(ctx context.Context, load int) (overloaded bool, err error)

// Observer receives progress notifications from a Runner. Implementations
// must not call back into the searcher.
type Observer interface {
	// ObserveProbe is called after each probe completes, with the load
	// that was applied, its outcome, and how long the probe took.
	ObserveProbe(load int, overloaded bool, elapsed time.Duration)

	// ObserveEstimate is called whenever the bracket estimate changes.
	ObserveEstimate(b Bracket)
}

// Runner drives a searcher against a system under test: it alternates
// requesting a candidate load, probing the system at that load, and
// reporting the outcome back, until the searcher terminates.
type Runner struct {
	Searcher CliffSearcher
	Probe    Probe

	// Logger receives one record per probe. Defaults to slog.Default().
	Logger *slog.Logger

	// Observers are notified after every probe, in order.
	Observers []Observer
}

// Run executes the search to completion and returns the final bracket.
// The context is checked between probes and passed to each probe; on
// cancellation, the best estimate so far is returned along with the
// context's error.
func (r *Runner) Run(ctx context.Context) (Bracket, error) {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	for {
		load, ok := r.Searcher.Next()
		if !ok {
			break
		}

		if err := ctx.Err(); err != nil {
			return r.Searcher.Estimate(), err
		}

		start := time.Now()
		overloaded, err := r.Probe(ctx, load)
		elapsed := time.Since(start)
		if err != nil {
			return r.Searcher.Estimate(), fmt.Errorf("probe at load %d: %w", load, err)
		}

		if overloaded {
			r.Searcher.Overloaded()
		}

		est := r.Searcher.Estimate()
		log.Info("probed load level",
			"load", load,
			"overloaded", overloaded,
			"elapsed", elapsed,
			"estimate", est)

		for _, o := range r.Observers {
			o.ObserveProbe(load, overloaded, elapsed)
			o.ObserveEstimate(est)
		}
	}

	// Outcomes fold into the bracket lazily, on the produce call that
	// follows them, so the estimates observed inside the loop lag by one
	// probe. Publish the settled bracket once the search is over.
	est := r.Searcher.Estimate()
	for _, o := range r.Observers {
		o.ObserveEstimate(est)
	}
	log.Info("search complete", "estimate", est)
	return est, nil
}
