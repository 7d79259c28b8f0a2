// Package levelize computes a topological traversal order over a
// combinational gate graph (internal/circuit.Circuit) so the batched
// fault simulator can evaluate every gate after all of its fan-in has
// already settled.
package levelize

import (
	"errors"
	"fmt"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
)

// ErrCycleDetected is returned when the gate graph is not a DAG. A
// stem/branch-expanded combinational netlist (internal/circuit.Build)
// should never produce one; seeing this means the netlist itself
// describes feedback, which this ATPG core does not support.
var ErrCycleDetected = errors.New("levelize: cycle detected in gate graph")

const (
	white = iota
	gray
	black
)

// Order is the result of a topological traversal: GateOrder lists gate
// IDs such that every gate appears after all gates driving its fan-in,
// and Level assigns each gate a distance-from-primary-input number
// (0 for gates fed only by primary inputs).
type Order struct {
	GateOrder []int
	Level     []int
}

// Compute walks c's gate graph and returns a topological Order.
func Compute(c *circuit.Circuit) (*Order, error) {
	n := c.NumGates()
	state := make([]int, n)
	order := make([]int, 0, n)
	level := make([]int, n)

	var visit func(gateID int) error
	visit = func(gateID int) error {
		switch state[gateID] {
		case gray:
			return fmt.Errorf("%w: at gate %q", ErrCycleDetected, c.Gate(gateID).Name)
		case black:
			return nil
		}
		state[gateID] = gray

		lvl := 0
		for _, sigID := range c.Gate(gateID).Inputs {
			sig := c.Signal(sigID)
			if sig.IsPI || sig.Driver == -1 {
				continue
			}
			if err := visit(sig.Driver); err != nil {
				return err
			}
			if level[sig.Driver]+1 > lvl {
				lvl = level[sig.Driver] + 1
			}
		}

		state[gateID] = black
		level[gateID] = lvl
		order = append(order, gateID)
		return nil
	}

	for g := 0; g < n; g++ {
		if state[g] == white {
			if err := visit(g); err != nil {
				return nil, err
			}
		}
	}

	return &Order{GateOrder: order, Level: level}, nil
}
