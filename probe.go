package cliff

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Operation is one unit of work issued against the system under test.
// Implementations should be stateless and safe for concurrent execution.
type Operation func(ctx context.Context) error

// ProbeConfig controls how NewRateProbe measures one load level.
type ProbeConfig struct {
	// Duration is how long to offer load at each level.
	Duration time.Duration

	// Warmup is run at the same offered rate before measurement begins.
	Warmup time.Duration

	// Workers is the number of goroutines issuing operations. The offered
	// rate is shared between them.
	Workers int

	// MaxErrorRate is the fraction of failed operations above which the
	// level is judged overloaded.
	MaxErrorRate float64

	// MaxP99 judges the level overloaded when the 99th percentile latency
	// exceeds it. Zero disables the latency check.
	MaxP99 time.Duration
}

// DefaultProbeConfig returns sensible defaults.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		Duration:     5 * time.Second,
		Warmup:       1 * time.Second,
		Workers:      8,
		MaxErrorRate: 0.01,
		MaxP99:       0,
	}
}

// LevelStats contains measurements from a single load level.
type LevelStats struct {
	Load       int             // Offered load (operations per second)
	Duration   time.Duration   // Measured wall time
	Operations int64           // Operations completed
	Errors     int64           // Operations failed
	Latencies  []time.Duration // Individual successful-operation latencies
}

// ErrorRate returns the fraction of operations that failed.
func (s LevelStats) ErrorRate() float64 {
	total := s.Operations + s.Errors
	if total == 0 {
		return 0
	}
	return float64(s.Errors) / float64(total)
}

// Statistics contains percentile latency data for one load level.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// NewRateProbe returns a Probe that offers the candidate load as a rate,
// in operations per second, spread across a pool of workers. A level is
// judged overloaded when the error rate exceeds cfg.MaxErrorRate, or when
// the observed P99 latency exceeds cfg.MaxP99 (if set).
//
// The returned probe reports an error only when ctx is cancelled;
// operation failures count toward the overload judgement instead.
func NewRateProbe(op Operation, cfg ProbeConfig) Probe {
	return func(ctx context.Context, load int) (bool, error) {
		if cfg.Warmup > 0 {
			warmupCtx, cancel := context.WithTimeout(ctx, cfg.Warmup)
			_ = offerLoad(warmupCtx, op, load, cfg.Workers)
			cancel()
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		measureCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
		stats := offerLoad(measureCtx, op, load, cfg.Workers)
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if stats.ErrorRate() > cfg.MaxErrorRate {
			return true, nil
		}
		if cfg.MaxP99 > 0 {
			if s := CalculateStatistics(stats); s.P99 > cfg.MaxP99 {
				return true, nil
			}
		}
		return false, nil
	}
}

// offerLoad issues op at the given rate until ctx expires.
func offerLoad(ctx context.Context, op Operation, load, workers int) LevelStats {
	if workers < 1 {
		workers = 1
	}

	limiter := rate.NewLimiter(rate.Limit(load), workers)

	var (
		wg         sync.WaitGroup
		operations int64
		errCount   int64
		latencies  = make([][]time.Duration, workers) // Per-worker latency slices
	)

	start := time.Now()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		workerID := i
		latencies[workerID] = make([]time.Duration, 0, 1024)

		go func() {
			defer wg.Done()

			for {
				if err := limiter.Wait(ctx); err != nil {
					return
				}

				opStart := time.Now()
				err := op(ctx)
				opDuration := time.Since(opStart)

				if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
					atomic.AddInt64(&errCount, 1)
				} else if err == nil {
					atomic.AddInt64(&operations, 1)
					latencies[workerID] = append(latencies[workerID], opDuration)
				}
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Merge latencies from all workers
	all := make([]time.Duration, 0, operations)
	for _, workerLatencies := range latencies {
		all = append(all, workerLatencies...)
	}

	return LevelStats{
		Load:       load,
		Duration:   elapsed,
		Operations: operations,
		Errors:     errCount,
		Latencies:  all,
	}
}

// CalculateStatistics computes percentile latencies for one level.
func CalculateStatistics(stats LevelStats) Statistics {
	if len(stats.Latencies) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(stats.Latencies))
	copy(sorted, stats.Latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	// Mean
	var sum time.Duration
	for _, lat := range sorted {
		sum += lat
	}
	mean := sum / time.Duration(len(sorted))

	// Standard deviation
	var variance float64
	for _, lat := range sorted {
		diff := float64(lat - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	// Percentiles
	p50 := sorted[len(sorted)*50/100]
	p95 := sorted[len(sorted)*95/100]
	p99 := sorted[len(sorted)*99/100]

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		P50:    p50,
		P95:    p95,
		P99:    p99,
	}
}
