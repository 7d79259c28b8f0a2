// Package faultsim is the batched two-valued fault simulator: given a
// levelized circuit and a set of input vectors, it scores every vector
// against the complete stuck-at fault list (every signal × {0, 1}):
// one fault-free pass per vector plus one forced pass per fault,
// independent of the five-valued PODEM engine in internal/sim.
package faultsim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/levelize"
)

// Matrix is the detected[M × 2·|S|] result: Row(v)[2*s+b] reports
// whether vector v detects signal s stuck at bit b.
type Matrix struct {
	NumVectors int
	NumSignals int
	rows       [][]bool
}

// FaultIndex maps a (signal, stuckAt) pair to its column in a row.
func FaultIndex(signal, stuckAt int) int { return 2*signal + stuckAt }

// Row returns the detection bits for vector v, indexed by FaultIndex.
func (m *Matrix) Row(v int) []bool { return m.rows[v] }

// Detected reports whether vector v detects signal s stuck at bit b.
func (m *Matrix) Detected(v, s, b int) bool { return m.rows[v][FaultIndex(s, b)] }

// Run evaluates every vector in vectors (each a slice of 0/1 bits, one
// per entry of c.PI in order) against the full stuck-at fault list and
// returns the resulting Matrix. Vectors are independent of one another
// and are evaluated concurrently via an errgroup; each goroutine owns
// its own scratch state, so Run never mutates shared state.
func Run(ctx context.Context, c *circuit.Circuit, order *levelize.Order, vectors [][]int) (*Matrix, error) {
	numSignals := c.NumSignals()
	m := &Matrix{
		NumVectors: len(vectors),
		NumSignals: numSignals,
		rows:       make([][]bool, len(vectors)),
	}

	g, _ := errgroup.WithContext(ctx)
	for idx, bits := range vectors {
		idx, bits := idx, bits
		if len(bits) != len(c.PI) {
			return nil, fmt.Errorf("%w: vector %d has %d bits, want %d", ErrVectorWidth, idx, len(bits), len(c.PI))
		}
		g.Go(func() error {
			row, err := simulateVector(c, order, bits, numSignals)
			if err != nil {
				return err
			}
			m.rows[idx] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// simulateVector runs the fault-free golden pass for one vector, then
// one forced pass per fault index, per §4.6.
func simulateVector(c *circuit.Circuit, order *levelize.Order, bits []int, numSignals int) ([]bool, error) {
	golden := make([]int, numSignals)
	applyVector(c, golden, bits)
	if err := evaluate(c, order, golden, -1, 0); err != nil {
		return nil, err
	}
	goldenPO := make([]int, len(c.PO))
	for i, po := range c.PO {
		goldenPO[i] = golden[po]
	}

	row := make([]bool, 2*numSignals)
	state := make([]int, numSignals)
	for s := 0; s < numSignals; s++ {
		for b := 0; b < 2; b++ {
			applyVector(c, state, bits)
			if err := evaluate(c, order, state, s, b); err != nil {
				return nil, err
			}
			row[FaultIndex(s, b)] = disagrees(c, state, goldenPO)
		}
	}
	return row, nil
}

func applyVector(c *circuit.Circuit, state []int, bits []int) {
	for i, pi := range c.PI {
		state[pi] = bits[i]
	}
}

func disagrees(c *circuit.Circuit, state []int, goldenPO []int) bool {
	for i, po := range c.PO {
		if state[po] != goldenPO[i] {
			return true
		}
	}
	return false
}

// evaluate walks order, computing each gate's two-valued output from
// its fan-in and writing it into state, forcing forceSignal to
// forceValue wherever it is written (PI position or gate output) —
// forceSignal < 0 means no fault is forced, the golden pass.
func evaluate(c *circuit.Circuit, order *levelize.Order, state []int, forceSignal, forceValue int) error {
	if forceSignal >= 0 {
		state[forceSignal] = forceValue
	}
	for _, gateID := range order.GateOrder {
		g := c.Gate(gateID)
		if g.Kind == circuit.INPUT {
			return fmt.Errorf("%w: gate %q", ErrInputGateEncountered, g.Name)
		}
		ins := make([]int, len(g.Inputs))
		for i, sigID := range g.Inputs {
			ins[i] = state[sigID]
		}
		v := evalGate(g.Kind, ins)
		if g.Output == forceSignal {
			v = forceValue
		}
		state[g.Output] = v
	}
	return nil
}

func evalGate(kind circuit.GateKind, ins []int) int {
	switch kind {
	case circuit.BUF:
		return ins[0]
	case circuit.NOT:
		return 1 - ins[0]
	case circuit.AND:
		for _, x := range ins {
			if x == 0 {
				return 0
			}
		}
		return 1
	case circuit.NAND:
		for _, x := range ins {
			if x == 0 {
				return 1
			}
		}
		return 0
	case circuit.OR:
		for _, x := range ins {
			if x == 1 {
				return 1
			}
		}
		return 0
	case circuit.NOR:
		for _, x := range ins {
			if x == 1 {
				return 0
			}
		}
		return 1
	case circuit.XOR:
		return parity(ins)
	case circuit.XNOR:
		return 1 - parity(ins)
	default:
		return 0
	}
}

func parity(ins []int) int {
	p := 0
	for _, x := range ins {
		p ^= x
	}
	return p
}
