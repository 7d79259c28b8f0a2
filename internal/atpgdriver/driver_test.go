package atpgdriver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/obs"
	"github.com/fyerfyer/podem-atpg/internal/podem"
)

func buildThreeInputAND(t *testing.T) *circuit.Circuit {
	t.Helper()
	src := circuit.Source{
		PIOrder: []string{"A", "B", "C"},
		POOrder: []string{"Z"},
		Gates:   []circuit.RawGate{{Output: "Z", Kind: circuit.AND, Inputs: []string{"A", "B", "C"}}},
	}
	c, err := circuit.Build(src)
	require.NoError(t, err)
	return c
}

// TestRunCoversEverySignalIncludingPOs covers the expanded spec's
// explicit departure from the teacher: primary outputs are fault
// sites too, not skipped "for simplicity".
func TestRunCoversEverySignalIncludingPOs(t *testing.T) {
	c := buildThreeInputAND(t)
	logger := obs.NewLogger(obs.Config{})
	metrics := obs.NewMetrics()

	report, err := Run(context.Background(), c, podem.DefaultConfig(), logger.Logger, metrics)
	require.NoError(t, err)
	require.Equal(t, 2*c.NumSignals(), len(report.Results))

	zID, ok := c.NameToID("Z")
	require.True(t, ok)
	var sawZ bool
	for _, res := range report.Results {
		if res.Fault.Signal == zID {
			sawZ = true
		}
	}
	require.True(t, sawZ, "Z (a primary output) must appear as a fault site")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteExposition(&buf))
	require.Contains(t, buf.String(), "atpg_faults_total")
}

// TestRunAllDetectedOnFullyTestableCircuit: the single 3-input AND gate
// has no redundant faults, so every one of its 8 faults must be found.
func TestRunAllDetectedOnFullyTestableCircuit(t *testing.T) {
	c := buildThreeInputAND(t)
	logger := obs.NewLogger(obs.Config{})

	report, err := Run(context.Background(), c, podem.DefaultConfig(), logger.Logger, nil)
	require.NoError(t, err)
	require.Equal(t, len(report.Results), report.TestsFound())
	require.Equal(t, 1.0, report.Coverage())
}
