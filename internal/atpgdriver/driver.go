// Package atpgdriver is the ATPG driver (C8): it enumerates every
// stuck-at fault in a circuit, invokes the PODEM search once per
// fault, and aggregates the per-fault outcomes and timings into a
// Report. Unlike the FAN generator it is descended from, it does not
// skip primary outputs as fault sites — the expanded specification
// requires every signal × {stuck-at-0, stuck-at-1} to be attempted.
package atpgdriver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/obs"
	"github.com/fyerfyer/podem-atpg/internal/podem"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// Fault identifies one stuck-at fault site.
type Fault struct {
	Signal int
	Value  dalgebra.Value // dalgebra.D for stuck-at-0, dalgebra.Dnot for stuck-at-1
}

// StuckAt reports the fault as a 0/1 bit, matching faultsim's encoding.
func (f Fault) StuckAt() int {
	if f.Value == dalgebra.Dnot {
		return 1
	}
	return 0
}

// FaultResult is one fault's outcome: whether a test was found, the
// vector if so, and how long the attempt took.
type FaultResult struct {
	Fault    Fault
	Found    bool
	Vector   map[string]int
	Duration time.Duration
}

// Report aggregates every fault attempted in a run.
type Report struct {
	Results       []FaultResult
	TotalDuration time.Duration
}

// TestsFound counts results with Found set.
func (r *Report) TestsFound() int {
	n := 0
	for _, res := range r.Results {
		if res.Found {
			n++
		}
	}
	return n
}

// Coverage returns TestsFound / len(Results) as a fraction in [0, 1],
// or 0 if no faults were attempted.
func (r *Report) Coverage() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.TestsFound()) / float64(len(r.Results))
}

// Run enumerates every signal × {D, Dnot} in c.S and attempts a PODEM
// test for each, sequentially (§4.8: "the ATPG driver itself is
// sequential across faults" — parallelism lives inside a single
// fault's search, per cfg.ParallelMode).
// metrics is nil-safe: pass nil to skip instrumentation entirely.
func Run(ctx context.Context, c *circuit.Circuit, cfg podem.Config, logger zerolog.Logger, metrics *obs.Metrics) (*Report, error) {
	start := time.Now()
	report := &Report{Results: make([]FaultResult, 0, 2*c.NumSignals())}

	for _, sigID := range c.S {
		for _, v := range []dalgebra.Value{dalgebra.D, dalgebra.Dnot} {
			fault := Fault{Signal: sigID, Value: v}

			faultStart := time.Now()
			s := sim.New(c)
			vector, found, err := podem.Run(ctx, s, sigID, v, cfg)
			duration := time.Since(faultStart)
			if err != nil {
				return nil, fmt.Errorf("atpgdriver: fault %s/%d: %w", c.Signal(sigID).Name, fault.StuckAt(), err)
			}

			if metrics != nil {
				metrics.ObserveFault(duration, len(s.Frontier), found)
			}

			logger.Debug().
				Str("signal", c.Signal(sigID).Name).
				Int("stuck_at", fault.StuckAt()).
				Bool("found", found).
				Dur("duration", duration).
				Msg("fault attempted")

			report.Results = append(report.Results, FaultResult{
				Fault:    fault,
				Found:    found,
				Vector:   vector,
				Duration: duration,
			})
		}
	}

	report.TotalDuration = time.Since(start)
	logger.Info().
		Int("faults", len(report.Results)).
		Int("tests_found", report.TestsFound()).
		Float64("coverage", report.Coverage()).
		Dur("total_duration", report.TotalDuration).
		Msg("ATPG run complete")

	return report, nil
}
