package podem

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// searchAcrossDecisions implements the across-decisions variant
// (§4.5): at each recursion point it explores (pi, v) and (pi, not v)
// on independent clones, degrading to serial recursion once
// MaxActiveTasks concurrent tasks are already outstanding. The pair's
// errgroup is itself capped at MaxThreads (§6: "size of the worker
// pool used for PODEM task parallelism") via SetLimit, so a
// MaxThreads=1 run serializes the two branches — first (pi,v)'s whole
// subtree runs to completion, including its own nested pairs, before
// (pi,not v) ever starts — instead of just bounding how many decision
// nodes may be outstanding at once.
func searchAcrossDecisions(ctx context.Context, s *sim.Sim, sc *searchContext) (map[string]int, bool, error) {
	if sc.solutionFound.Load() {
		return nil, false, nil
	}
	if detected(s) {
		sc.solutionFound.Store(true)
		return s.CurrentPIValues(), true, nil
	}
	if exhausted(s) {
		return nil, false, nil
	}

	obj, ok := selectObjective(s)
	if !ok {
		return nil, false, nil
	}
	pi, v := backtrace(s, obj)

	if sc.activeTasks.Load() >= sc.cfg.MaxActiveTasks {
		return decideSerialOnBranch(ctx, s, sc, pi, v)
	}

	cloneA := s.Clone()
	cloneB := s.Clone()

	sc.activeTasks.Add(2)
	defer sc.activeTasks.Add(-2)

	var resA, resB map[string]int
	var foundA, foundB bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threadLimit(sc.cfg.MaxThreads))
	g.Go(func() error {
		cloneA.SetAndImply(pi, v)
		r, f, err := searchAcrossDecisions(gctx, cloneA, sc)
		resA, foundA = r, f
		return err
	})
	g.Go(func() error {
		cloneB.SetAndImply(pi, flip(v))
		r, f, err := searchAcrossDecisions(gctx, cloneB, sc)
		resB, foundB = r, f
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	// Preference to the first decision (v) if both succeeded, per §9
	// open question 3 — either is a valid test vector, so the tie-break
	// is ours to make.
	if foundA {
		s.Adopt(cloneA)
		return resA, true, nil
	}
	if foundB {
		s.Adopt(cloneB)
		return resB, true, nil
	}

	s.SetAndImply(pi, dalgebra.X)
	return nil, false, nil
}

// decideSerialOnBranch runs the same two-value decision/backtrack as
// searchSerial, but still threaded through the parallel variant's
// searchContext so solution_found is honored across modes.
func decideSerialOnBranch(ctx context.Context, s *sim.Sim, sc *searchContext, pi int, v dalgebra.Value) (map[string]int, bool, error) {
	s.SetAndImply(pi, v)
	if res, found, err := searchAcrossDecisions(ctx, s, sc); found || err != nil {
		return res, found, err
	}

	s.SetAndImply(pi, flip(v))
	if res, found, err := searchAcrossDecisions(ctx, s, sc); found || err != nil {
		return res, found, err
	}

	s.SetAndImply(pi, dalgebra.X)
	return nil, false, nil
}
