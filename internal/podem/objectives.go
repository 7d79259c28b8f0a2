package podem

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// searchAcrossObjectives implements the across-objectives variant
// (§4.5): up to MaxParallelObjectives distinct D-frontier objectives
// are pursued concurrently, each on its own clone performing its own
// backtrace and full two-value attempt. The fan-out's errgroup is
// capped at MaxThreads via SetLimit, so MaxThreads=1 runs the
// objectives one at a time regardless of how many selectObjectives
// returned.
func searchAcrossObjectives(ctx context.Context, s *sim.Sim, sc *searchContext) (map[string]int, bool, error) {
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

	objs := selectObjectives(s, sc.cfg.MaxParallelObjectives)
	if len(objs) == 0 {
		return nil, false, nil
	}
	if len(objs) == 1 || sc.activeTasks.Load() >= sc.cfg.MaxActiveTasks {
		pi, v := backtrace(s, objs[0])
		return decideSerialObjective(ctx, s, sc, pi, v)
	}

	sc.activeTasks.Add(int64(len(objs)))
	defer sc.activeTasks.Add(-int64(len(objs)))

	clones := make([]*sim.Sim, len(objs))
	results := make([]map[string]int, len(objs))
	founds := make([]bool, len(objs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threadLimit(sc.cfg.MaxThreads))
	for idx, obj := range objs {
		idx, obj := idx, obj
		clones[idx] = s.Clone()
		g.Go(func() error {
			pi, v := backtrace(clones[idx], obj)
			res, found, err := decideSerialObjective(gctx, clones[idx], sc, pi, v)
			results[idx], founds[idx] = res, found
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	for idx, found := range founds {
		if found {
			s.Adopt(clones[idx])
			return results[idx], true, nil
		}
	}
	return nil, false, nil
}

// decideSerialObjective performs the try-v-then-not-v decision for one
// already-chosen objective's (pi, v) pair, recursing back into the
// across-objectives search on whatever clone it was given.
func decideSerialObjective(ctx context.Context, s *sim.Sim, sc *searchContext, pi int, v dalgebra.Value) (map[string]int, bool, error) {
	s.SetAndImply(pi, v)
	if res, found, err := searchAcrossObjectives(ctx, s, sc); found || err != nil {
		return res, found, err
	}

	s.SetAndImply(pi, flip(v))
	if res, found, err := searchAcrossObjectives(ctx, s, sc); found || err != nil {
		return res, found, err
	}

	s.SetAndImply(pi, dalgebra.X)
	return nil, false, nil
}
