// Package podem implements the PODEM search: objective selection,
// backtrace, and decision/backtrack recursion against a five-valued
// implication engine (internal/sim), plus the across-decisions and
// across-objectives task-parallel variants.
package podem

import (
	"context"

	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// Run attempts to generate a test vector for the stuck-at fault
// (faultLoc, faultVal) against s, dispatching to the configured
// parallel variant. s is mutated in place: on success it ends up
// holding the winning branch's state; on failure it is left fully
// undone (every PI back at X).
func Run(ctx context.Context, s *sim.Sim, faultLoc int, faultVal dalgebra.Value, cfg Config) (map[string]int, bool, error) {
	if err := s.SetCircuitFault(faultLoc, faultVal); err != nil {
		return nil, false, err
	}
	s.Reset()

	sc := &searchContext{cfg: cfg}

	switch cfg.ParallelMode {
	case ModeAcrossDecisions:
		return searchAcrossDecisions(ctx, s, sc)
	case ModeAcrossObjectives:
		return searchAcrossObjectives(ctx, s, sc)
	default:
		res, found := searchSerial(s, sc)
		return res, found, nil
	}
}

// detected reports whether any primary output currently carries a
// fault effect (§4.4 step 2).
func detected(s *sim.Sim) bool {
	for _, po := range s.Topo.PO {
		if s.State[po].IsFaulty() {
			return true
		}
	}
	return false
}

// exhausted reports the §4.4 step 3 failure condition: the D-frontier
// is empty but the fault has already been activated, so there is no
// path left to propagate it.
func exhausted(s *sim.Sim) bool {
	return len(s.Frontier) == 0 && s.State[s.FaultLocation] != dalgebra.X
}

// searchSerial is the single-threaded recursive core, §4.4 steps 2-6.
func searchSerial(s *sim.Sim, sc *searchContext) (map[string]int, bool) {
	if sc.solutionFound.Load() {
		return nil, false
	}
	if detected(s) {
		sc.solutionFound.Store(true)
		return s.CurrentPIValues(), true
	}
	if exhausted(s) {
		return nil, false
	}

	obj, ok := selectObjective(s)
	if !ok {
		return nil, false
	}
	pi, v := backtrace(s, obj)

	s.SetAndImply(pi, v)
	if res, found := searchSerial(s, sc); found {
		return res, true
	}

	s.SetAndImply(pi, flip(v))
	if res, found := searchSerial(s, sc); found {
		return res, true
	}

	s.SetAndImply(pi, dalgebra.X)
	return nil, false
}
