package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fyerfyer/podem-atpg/internal/atpgdriver"
	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/faultsim"
)

// WriteFaultReport renders an ATPG Report as §6's "Result output":
// one "signal,{0|1},seconds,detected" line per attempted fault,
// followed by the total computation time, adapted from the teacher's
// WriteTestVectors line-oriented writer.
func WriteFaultReport(w io.Writer, c *circuit.Circuit, report *atpgdriver.Report) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for _, res := range report.Results {
		detected := 0
		if res.Found {
			detected = 1
		}
		if _, err := fmt.Fprintf(bw, "%s,%d,%.6f,%d\n",
			c.Signal(res.Fault.Signal).Name, res.Fault.StuckAt(), res.Duration.Seconds(), detected); err != nil {
			return fmt.Errorf("ioformat: writing fault report: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "total,%.6f\n", report.TotalDuration.Seconds()); err != nil {
		return fmt.Errorf("ioformat: writing fault report total: %w", err)
	}
	return bw.Flush()
}

// WriteDetectionMatrix renders a faultsim.Matrix as one CSV-ish line
// per vector: the vector's label followed by a 0/1 detection bit for
// every signal/stuck-at pair, in FaultIndex order.
func WriteDetectionMatrix(w io.Writer, c *circuit.Circuit, labels []string, m *faultsim.Matrix) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if _, err := fmt.Fprint(bw, "vector"); err != nil {
		return err
	}
	for s := 0; s < m.NumSignals; s++ {
		name := c.Signal(s).Name
		if _, err := fmt.Fprintf(bw, ",%s/0,%s/1", name, name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(bw, "\n"); err != nil {
		return err
	}

	for v := 0; v < m.NumVectors; v++ {
		label := fmt.Sprintf("v%d", v)
		if v < len(labels) {
			label = labels[v]
		}
		if _, err := fmt.Fprint(bw, label); err != nil {
			return err
		}
		row := m.Row(v)
		for _, bit := range row {
			b := 0
			if bit {
				b = 1
			}
			if _, err := fmt.Fprintf(bw, ",%d", b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
