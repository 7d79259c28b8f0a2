package podem

import (
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

// Objective is a (signal, value) pair the search currently wants to
// realize, either the initial fault-activation objective or one
// derived from a D-frontier gate's X fan-in.
type Objective struct {
	Signal int
	Value  dalgebra.Value
}

// selectObjective implements §4.4 step 4's single-objective choice:
// the fault site itself while it is still X, otherwise the first X
// fan-in of the lowest-numbered D-frontier gate. Both choices are
// deterministic so serial-mode runs are reproducible.
func selectObjective(s *sim.Sim) (Objective, bool) {
	if s.State[s.FaultLocation] == dalgebra.X {
		return activationObjective(s), true
	}
	for _, gateID := range s.FrontierGates() {
		g := s.Topo.Gate(gateID)
		for _, in := range g.Inputs {
			if s.State[in] == dalgebra.X {
				return Objective{Signal: in, Value: g.Kind.NonControllingValue()}, true
			}
		}
	}
	return Objective{}, false
}

// selectObjectives is the across-objectives variant's fan-out: up to
// max distinct D-frontier objectives, or the single activation
// objective if the fault has not yet been activated (activation has
// no alternative objectives to fan out across).
func selectObjectives(s *sim.Sim, max int) []Objective {
	if max <= 0 {
		max = 1
	}
	if s.State[s.FaultLocation] == dalgebra.X {
		return []Objective{activationObjective(s)}
	}
	objs := make([]Objective, 0, max)
	for _, gateID := range s.FrontierGates() {
		g := s.Topo.Gate(gateID)
		for _, in := range g.Inputs {
			if s.State[in] == dalgebra.X {
				objs = append(objs, Objective{Signal: in, Value: g.Kind.NonControllingValue()})
				if len(objs) >= max {
					return objs
				}
			}
		}
	}
	return objs
}

func activationObjective(s *sim.Sim) Objective {
	v := dalgebra.One
	if s.FaultValue == dalgebra.Dnot {
		v = dalgebra.Zero
	}
	return Objective{Signal: s.FaultLocation, Value: v}
}
