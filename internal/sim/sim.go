// Package sim implements the five-valued implication engine: forward
// propagation of a primary-input assignment through a stem/branch
// expanded circuit, D-frontier maintenance, and stuck-at fault
// injection. Sim holds the mutable half of a circuit evaluation
// (state, D-frontier, active fault); internal/circuit.Circuit holds
// the immutable topology and is shared read-only across every clone a
// PODEM search spawns.
package sim

import (
	"fmt"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
)

// Sim is one mutable evaluation branch over a shared, read-only
// Circuit. Zero value is not usable; construct with New.
type Sim struct {
	Topo *circuit.Circuit

	State    []dalgebra.Value
	Frontier map[int]bool // gate IDs currently on the D-frontier

	FaultLocation int // signal ID, or -1 if no fault is active
	FaultValue    dalgebra.Value
}

// New builds a Sim over topo with every signal initialized to X and
// no active fault.
func New(topo *circuit.Circuit) *Sim {
	s := &Sim{
		Topo:          topo,
		State:         make([]dalgebra.Value, topo.NumSignals()),
		Frontier:      make(map[int]bool),
		FaultLocation: -1,
		FaultValue:    dalgebra.X,
	}
	for i := range s.State {
		s.State[i] = dalgebra.X
	}
	return s
}

// Clone deep-copies the mutable state, D-frontier, and fault, while
// keeping Topo shared. This is the only allocation a PODEM task spawn
// needs to pay for (internal/podem).
func (s *Sim) Clone() *Sim {
	clone := &Sim{
		Topo:          s.Topo,
		State:         append([]dalgebra.Value(nil), s.State...),
		Frontier:      make(map[int]bool, len(s.Frontier)),
		FaultLocation: s.FaultLocation,
		FaultValue:    s.FaultValue,
	}
	for g := range s.Frontier {
		clone.Frontier[g] = true
	}
	return clone
}

// Adopt replaces s's mutable state with other's. Used when a parallel
// PODEM task spawn (internal/podem) succeeds on a clone and that
// clone's state must become visible on the parent branch.
func (s *Sim) Adopt(other *Sim) {
	s.State = other.State
	s.Frontier = other.Frontier
	s.FaultLocation = other.FaultLocation
	s.FaultValue = other.FaultValue
}

// SetCircuitFault records the active stuck-at fault. loc must be a
// valid signal ID and v must be D (stuck-at-0) or D' (stuck-at-1).
func (s *Sim) SetCircuitFault(loc int, v dalgebra.Value) error {
	if loc < 0 || loc >= len(s.State) {
		return ErrInvalidFaultSignal
	}
	if v != dalgebra.D && v != dalgebra.Dnot {
		return ErrInvalidFaultValue
	}
	s.FaultLocation = loc
	s.FaultValue = v
	return nil
}

// Reset sets every primary input back to X and propagates the change,
// composing the return codes observed along the way.
func (s *Sim) Reset() ReturnCode {
	code := NORMAL
	for _, pi := range s.Topo.PI {
		c, _ := s.SetAndImply(pi, dalgebra.X)
		code = Compose(code, c)
	}
	return code
}

// SetAndImply assigns v to the primary input pi, applies fault
// injection if pi is the active fault site, and recursively
// re-evaluates every dependent gate. It returns the composite return
// code for this single assignment and its downstream effects.
func (s *Sim) SetAndImply(pi int, v dalgebra.Value) (ReturnCode, error) {
	sig := s.Topo.Signal(pi)
	if !sig.IsPI {
		return ERROR, fmt.Errorf("%w: %q", ErrNotPrimaryInput, sig.Name)
	}

	finalV, code := s.classify(pi, v)
	changed := s.State[pi] != finalV
	s.State[pi] = finalV
	if !changed {
		return code, nil
	}
	return Compose(code, s.evaluateFrom(pi)), nil
}

// CurrentPIValues returns each primary input's two-valued projection:
// D and 1 both project to 1; 0, D', and X all project to 0.
func (s *Sim) CurrentPIValues() map[string]int {
	out := make(map[string]int, len(s.Topo.PI))
	for _, pi := range s.Topo.PI {
		out[s.Topo.Signal(pi).Name] = projectBinary(s.State[pi])
	}
	return out
}

func projectBinary(v dalgebra.Value) int {
	if v == dalgebra.One || v == dalgebra.D {
		return 1
	}
	return 0
}

// FrontierGates returns the current D-frontier gate IDs in ascending
// order, so callers get a deterministic iteration order.
func (s *Sim) FrontierGates() []int {
	gates := make([]int, 0, len(s.Frontier))
	for g := range s.Frontier {
		gates = append(gates, g)
	}
	for i := 1; i < len(gates); i++ {
		for j := i; j > 0 && gates[j-1] > gates[j]; j-- {
			gates[j-1], gates[j] = gates[j], gates[j-1]
		}
	}
	return gates
}

// evaluateFrom re-evaluates every downstream consumer of sigID. After
// stem/branch expansion this is a single gate for every signal except
// a stem, which drives the K synthesized BUF gates created for its
// branches; composing across all of them keeps a multi-fanout stem
// correct without needing special-case logic here.
func (s *Sim) evaluateFrom(sigID int) ReturnCode {
	code := NORMAL
	for _, gateID := range s.Topo.Signal(sigID).Consumers {
		code = Compose(code, s.evaluateGate(gateID))
	}
	return code
}

func (s *Sim) evaluateGate(gateID int) ReturnCode {
	g := s.Topo.Gate(gateID)
	ins := make([]dalgebra.Value, len(g.Inputs))
	hasD := false
	for i, sigID := range g.Inputs {
		ins[i] = s.State[sigID]
		if ins[i].IsFaulty() {
			hasD = true
		}
	}

	natural := g.Kind.Eval(ins)
	v, code := s.classify(g.Output, natural)

	if v == dalgebra.X && hasD {
		s.Frontier[gateID] = true
	} else {
		delete(s.Frontier, gateID)
	}

	changed := s.State[g.Output] != v
	s.State[g.Output] = v
	if !changed {
		return code
	}
	return Compose(code, s.evaluateFrom(g.Output))
}

// classify applies §4.3's fault injection override to sigID's natural
// evaluation value (only when sigID is the active fault site), then
// classifies the resulting value: any signal newly carrying D or D'
// reports DETECTED if it is a PO, ACTIVATED otherwise, and a
// fault-site override that collapses back to a concrete 0/1 reports
// MASKED. Everything else is NORMAL. This applies uniformly to the
// fault site itself and to every signal the fault effect propagates
// through, since D/D' values fold through the D-algebra tables
// without any further override downstream of the fault site.
func (s *Sim) classify(sigID int, natural dalgebra.Value) (dalgebra.Value, ReturnCode) {
	v := natural
	code := NORMAL

	if sigID == s.FaultLocation && v != dalgebra.X {
		switch s.FaultValue {
		case dalgebra.D: // stuck-at-0
			if v == dalgebra.Zero {
				code = MASKED
			} else {
				v = dalgebra.D
			}
		case dalgebra.Dnot: // stuck-at-1
			if v == dalgebra.One {
				code = MASKED
			} else {
				v = dalgebra.Dnot
			}
		}
	}

	if code != MASKED && v.IsFaulty() {
		if s.Topo.Signal(sigID).IsPO {
			code = DETECTED
		} else {
			code = ACTIVATED
		}
	}

	return v, code
}
