package podem

import (
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// backtrace walks from obj toward a primary input, at each gate
// descending into the first fan-in still at X (in declared input
// order, for determinism) and flipping the target value at every
// inverting gate. It yields the (pi, value) decision §4.4 step 6 acts
// on.
func backtrace(s *sim.Sim, obj Objective) (int, dalgebra.Value) {
	sigID, v := obj.Signal, obj.Value
	for {
		sig := s.Topo.Signal(sigID)
		if sig.IsPI {
			return sigID, v
		}

		g := s.Topo.Gate(sig.Driver)
		if g.Kind.IsInverting() {
			v = dalgebra.Not(v)
		}

		next := -1
		for _, in := range g.Inputs {
			if s.State[in] == dalgebra.X {
				next = in
				break
			}
		}
		if next == -1 {
			// No X fan-in left on the path to this objective; this
			// cannot happen for an objective selectObjective(s) itself
			// produced, since it only ever names a currently-X signal
			// reachable this way.
			return sigID, v
		}
		sigID = next
	}
}

func flip(v dalgebra.Value) dalgebra.Value {
	if v == dalgebra.Zero {
		return dalgebra.One
	}
	return dalgebra.Zero
}
