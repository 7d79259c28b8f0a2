package podem

import "sync/atomic"

// searchContext holds the atomics the parallel variants share across
// every task spawned for one run_podem call. Per §9's design note, this
// is deliberately NOT a package-level global: a fresh searchContext is
// built for every fault, so solution_found and active_tasks are
// implicitly reset between faults instead of relying on a manual
// reset step.
type searchContext struct {
	solutionFound atomic.Bool
	activeTasks   atomic.Int64
	cfg           Config
}

// threadLimit clamps n to a value errgroup.Group.SetLimit accepts as a
// real worker-pool bound: SetLimit(0) would mean no goroutine may ever
// run, deadlocking the search, so a non-positive MaxThreads (e.g. a
// zero-value Config that never went through config.Validate) is
// treated as the single-worker floor rather than "unlimited".
func threadLimit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
