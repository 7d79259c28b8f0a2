package faultsim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/levelize"
)

// TestORGateSanity mirrors the spec's fault-simulator sanity scenario:
// Z=OR(A,B), vector A=0,B=0. Stuck-at-1 on A, B, or Z is detected;
// stuck-at-0 on any of them is not.
func TestORGateSanity(t *testing.T) {
	src := circuit.Source{
		PIOrder: []string{"A", "B"},
		POOrder: []string{"Z"},
		Gates:   []circuit.RawGate{{Output: "Z", Kind: circuit.OR, Inputs: []string{"A", "B"}}},
	}
	c, err := circuit.Build(src)
	require.NoError(t, err)
	order, err := levelize.Compute(c)
	require.NoError(t, err)

	m, err := Run(context.Background(), c, order, [][]int{{0, 0}})
	require.NoError(t, err)
	require.Equal(t, 1, m.NumVectors)

	aID, _ := c.NameToID("A")
	bID, _ := c.NameToID("B")
	zID, _ := c.NameToID("Z")

	require.True(t, m.Detected(0, aID, 1), "A stuck-at-1 should be detected by 00")
	require.True(t, m.Detected(0, bID, 1), "B stuck-at-1 should be detected by 00")
	require.True(t, m.Detected(0, zID, 1), "Z stuck-at-1 should be detected by 00")
	require.False(t, m.Detected(0, aID, 0), "A stuck-at-0 should not be detected by 00")
	require.False(t, m.Detected(0, bID, 0), "B stuck-at-0 should not be detected by 00")
	require.False(t, m.Detected(0, zID, 0), "Z stuck-at-0 should not be detected by 00")
}

// TestCrossModelAgreement covers the spec's cross-model agreement
// property: C6's fault-free pass must match a direct hand evaluation
// of the gate function on the same PI assignment, across a circuit
// with a stem requiring branch expansion.
func TestCrossModelAgreement(t *testing.T) {
	src := circuit.Source{
		PIOrder: []string{"A", "B", "C"},
		POOrder: []string{"Z"},
		Gates: []circuit.RawGate{
			{Output: "X", Kind: circuit.AND, Inputs: []string{"A", "B"}},
			{Output: "Y", Kind: circuit.OR, Inputs: []string{"A", "C"}},
			{Output: "Z", Kind: circuit.XOR, Inputs: []string{"X", "Y"}},
		},
	}
	c, err := circuit.Build(src)
	require.NoError(t, err)
	order, err := levelize.Compute(c)
	require.NoError(t, err)

	zID, _ := c.NameToID("Z")
	cases := []struct {
		a, b, cc int
		want     int
	}{
		{1, 1, 0, 0}, // X=1,Y=1 -> Z=0
		{0, 0, 1, 1}, // X=0,Y=1 -> Z=1
		{0, 0, 0, 0}, // X=0,Y=0 -> Z=0
		{1, 0, 0, 1}, // X=0,Y=1 -> Z=1
	}
	vectors := make([][]int, len(cases))
	for i, tc := range cases {
		vectors[i] = []int{tc.a, tc.b, tc.cc}
	}

	m, err := Run(context.Background(), c, order, vectors)
	require.NoError(t, err)
	for i, tc := range cases {
		// Golden Z is read off Z's own stuck-at columns: forcing the PO Z
		// to its golden value never disagrees, forcing it to the opposite
		// value always does.
		gotDetectZStuck0 := m.Detected(i, zID, 0)
		gotDetectZStuck1 := m.Detected(i, zID, 1)
		if tc.want == 0 {
			require.True(t, gotDetectZStuck1, "case %d: golden Z=0 should be flipped by stuck-at-1", i)
			require.False(t, gotDetectZStuck0, "case %d: golden Z=0 should not be flipped by stuck-at-0", i)
		} else {
			require.True(t, gotDetectZStuck0, "case %d: golden Z=1 should be flipped by stuck-at-0", i)
			require.False(t, gotDetectZStuck1, "case %d: golden Z=1 should not be flipped by stuck-at-1", i)
		}
	}
}

// TestInputGateRejected confirms a fabricated Order naming an INPUT
// gate is rejected rather than silently mishandled.
func TestInputGateRejected(t *testing.T) {
	src := circuit.Source{
		PIOrder: []string{"A"},
		POOrder: []string{"Z"},
		Gates:   []circuit.RawGate{{Output: "Z", Kind: circuit.BUF, Inputs: []string{"A"}}},
	}
	c, err := circuit.Build(src)
	require.NoError(t, err)

	// Fabricate a gate of kind INPUT appended past the real gates, and
	// an order that visits it, to exercise the defensive check.
	zGateID := c.Gate(0).ID
	c.Gates = append(c.Gates, circuit.Gate{ID: len(c.Gates), Name: "bogus", Kind: circuit.INPUT})
	order := &levelize.Order{GateOrder: []int{zGateID, len(c.Gates) - 1}, Level: []int{0, 0}}

	_, err = Run(context.Background(), c, order, [][]int{{1}})
	require.ErrorIs(t, err, ErrInputGateEncountered)
}

// TestVectorWidthMismatch confirms a malformed vector is rejected.
func TestVectorWidthMismatch(t *testing.T) {
	src := circuit.Source{
		PIOrder: []string{"A", "B"},
		POOrder: []string{"Z"},
		Gates:   []circuit.RawGate{{Output: "Z", Kind: circuit.OR, Inputs: []string{"A", "B"}}},
	}
	c, err := circuit.Build(src)
	require.NoError(t, err)
	order, err := levelize.Compute(c)
	require.NoError(t, err)

	_, err = Run(context.Background(), c, order, [][]int{{1}})
	require.ErrorIs(t, err, ErrVectorWidth)
}
