package obs

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Output: &buf})
	logger.Info().Str("signal", "Z").Msg("fault attempted")

	require.Contains(t, buf.String(), `"signal":"Z"`)
	require.Contains(t, buf.String(), "fault attempted")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelWarn, Output: &buf})
	logger.Info().Msg("should be suppressed")
	logger.Warn().Msg("should appear")

	require.NotContains(t, buf.String(), "should be suppressed")
	require.Contains(t, buf.String(), "should appear")
}

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveFault(5*time.Millisecond, 3, true)
	m.ObserveFault(2*time.Millisecond, 0, false)

	var buf bytes.Buffer
	require.NoError(t, m.WriteExposition(&buf))

	out := buf.String()
	require.Contains(t, out, "atpg_fault_duration_seconds")
	require.Contains(t, out, "atpg_fault_frontier_size")
	require.Contains(t, out, `atpg_faults_total{outcome="detected"} 1`)
	require.Contains(t, out, `atpg_faults_total{outcome="undetected"} 1`)
}
