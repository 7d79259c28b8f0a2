package ioformat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/podem-atpg/internal/atpgdriver"
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/faultsim"
	"github.com/fyerfyer/podem-atpg/internal/levelize"
)

func TestWriteFaultReport(t *testing.T) {
	c := buildORCircuit(t)
	aID, _ := c.NameToID("A")
	zID, _ := c.NameToID("Z")

	report := &atpgdriver.Report{
		Results: []atpgdriver.FaultResult{
			{Fault: atpgdriver.Fault{Signal: aID, Value: dalgebra.Dnot}, Found: true, Duration: 2 * time.Millisecond},
			{Fault: atpgdriver.Fault{Signal: zID, Value: dalgebra.D}, Found: false, Duration: time.Millisecond},
		},
		TotalDuration: 3 * time.Millisecond,
	}

	var buf strings.Builder
	require.NoError(t, WriteFaultReport(&buf, c, report))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "A,1,0.002000,1", lines[0])
	require.Equal(t, "Z,0,0.001000,0", lines[1])
	require.Equal(t, "total,0.003000", lines[2])
}

func TestWriteDetectionMatrix(t *testing.T) {
	c := buildORCircuit(t)
	order, err := levelize.Compute(c)
	require.NoError(t, err)

	m, err := faultsim.Run(context.Background(), c, order, [][]int{{0, 0}})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteDetectionMatrix(&buf, c, []string{"v0"}, m))

	out := buf.String()
	require.Contains(t, out, "vector,A/0,A/1,B/0,B/1,Z/0,Z/1")
	require.Contains(t, out, "v0,")
}
