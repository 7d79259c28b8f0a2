package levelize

import (
	"testing"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
)

func buildChain(t *testing.T) *circuit.Circuit {
	t.Helper()
	src := circuit.Source{
		PIOrder: []string{"a", "b"},
		POOrder: []string{"g3"},
		Gates: []circuit.RawGate{
			{Output: "g1", Kind: circuit.AND, Inputs: []string{"a", "b"}},
			{Output: "g2", Kind: circuit.NOT, Inputs: []string{"g1"}},
			{Output: "g3", Kind: circuit.OR, Inputs: []string{"g1", "g2"}},
		},
	}
	c, err := circuit.Build(src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func TestComputeOrdersDependenciesFirst(t *testing.T) {
	c := buildChain(t)
	order, err := Compute(c)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	pos := make(map[int]int, len(order.GateOrder))
	for i, g := range order.GateOrder {
		pos[g] = i
	}

	g1 := findGate(c, "g1")
	g2 := findGate(c, "g2")
	g3 := findGate(c, "g3")

	if pos[g1.ID] >= pos[g2.ID] {
		t.Errorf("g1 (AND) must precede g2 (NOT) that reads it")
	}
	if pos[g1.ID] >= pos[g3.ID] || pos[g2.ID] >= pos[g3.ID] {
		t.Errorf("g3 (OR) must follow both its dependencies")
	}
	if order.Level[g1.ID] != 0 {
		t.Errorf("g1 fed only by PIs should be level 0, got %d", order.Level[g1.ID])
	}
	if order.Level[g3.ID] <= order.Level[g1.ID] {
		t.Errorf("g3's level should exceed g1's")
	}
}

func findGate(c *circuit.Circuit, name string) *circuit.Gate {
	for i := 0; i < c.NumGates(); i++ {
		if c.Gate(i).Name == name {
			return c.Gate(i)
		}
	}
	return nil
}
