package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/internal/atpgdriver"
	"github.com/fyerfyer/podem-atpg/internal/config"
	"github.com/fyerfyer/podem-atpg/internal/dalgebra"
	"github.com/fyerfyer/podem-atpg/internal/ioformat"
	"github.com/fyerfyer/podem-atpg/internal/obs"
	"github.com/fyerfyer/podem-atpg/internal/podem"
	"github.com/fyerfyer/podem-atpg/internal/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate PODEM test vectors for a circuit's faults",
	Long: `Run enumerates every signal x {stuck-at-0, stuck-at-1} fault in a
BENCH-format netlist (or a single fault named with --fault) and
attempts to derive a detecting input vector for each via PODEM.`,
	RunE: runATPG,
}

func init() {
	runCmd.Flags().String("circuit", "", "circuit file in BENCH format (required, or set circuit.netlist_file in --config)")
	runCmd.Flags().String("output", "", "result file (default: stdout)")
	runCmd.Flags().String("fault", "", `single fault to attempt, e.g. "net42/1" (default: every fault)`)
	runCmd.Flags().String("parallel-mode", "", "serial | across-decisions | across-objectives")
	runCmd.Flags().Int("max-threads", 0, "worker pool size for PODEM task parallelism")
	runCmd.Flags().Int64("max-active-tasks", -1, "cap on concurrently runnable PODEM tasks")
	runCmd.Flags().Int("max-parallel-objectives", 0, "fan-out cap for the across-objectives variant")
	runCmd.Flags().String("metrics", "", "write a Prometheus text-exposition dump of this run's metrics to this file")
}

func runATPG(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	circuitPath, err := requireFlagOrConfig(cmd, "circuit", cfg.Circuit.NetlistFile, "circuit")
	if err != nil {
		return err
	}
	applySearchFlagOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	c, err := loadCircuit(circuitPath)
	if err != nil {
		return err
	}
	logger.Info().Str("circuit", c.Name).Int("signals", c.NumSignals()).Int("gates", c.NumGates()).Msg("circuit loaded")

	metrics := obs.NewMetrics()
	ctx := context.Background()
	podemCfg := cfg.PodemConfig()

	outputPath, _ := cmd.Flags().GetString("output")
	out, err := openOutput(outputPath)
	if err != nil {
		return fmt.Errorf("opening --output: %w", err)
	}
	defer closeOutput(out)

	faultStr, _ := cmd.Flags().GetString("fault")
	if faultStr != "" {
		sigName, stuckAt, err := parseFaultString(faultStr)
		if err != nil {
			return err
		}
		sigID, ok := c.NameToID(sigName)
		if !ok {
			return fmt.Errorf("unknown signal %q", sigName)
		}
		faultVal := dalgebra.Dnot
		if stuckAt == 0 {
			faultVal = dalgebra.D
		}

		start := time.Now()
		s := sim.New(c)
		vector, found, err := podem.Run(ctx, s, sigID, faultVal, podemCfg)
		if err != nil {
			return fmt.Errorf("podem: %w", err)
		}
		duration := time.Since(start)
		logger.Info().Str("signal", sigName).Int("stuck_at", stuckAt).Bool("found", found).Interface("vector", vector).Msg("fault attempted")

		report := &atpgdriver.Report{
			Results: []atpgdriver.FaultResult{{
				Fault:    atpgdriver.Fault{Signal: sigID, Value: faultVal},
				Found:    found,
				Vector:   vector,
				Duration: duration,
			}},
			TotalDuration: duration,
		}
		return ioformat.WriteFaultReport(out, c, report)
	}

	report, err := atpgdriver.Run(ctx, c, podemCfg, logger.Logger, metrics)
	if err != nil {
		return fmt.Errorf("atpgdriver: %w", err)
	}
	if err := ioformat.WriteFaultReport(out, c, report); err != nil {
		return err
	}

	metricsPath, _ := cmd.Flags().GetString("metrics")
	if metricsPath == "" {
		metricsPath = cfg.Metrics.File
	}
	if metricsPath != "" {
		mf, err := openOutput(metricsPath)
		if err != nil {
			return fmt.Errorf("opening --metrics: %w", err)
		}
		defer closeOutput(mf)
		if err := metrics.WriteExposition(mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// applySearchFlagOverrides layers any explicitly-set search flags over
// cfg's search section; unset flags leave the config (or default)
// values untouched, so "flags win" (§D) only applies to what the user
// actually typed.
func applySearchFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("parallel-mode"); v != "" {
		cfg.Search.ParallelMode = v
	}
	if v, _ := cmd.Flags().GetInt("max-threads"); v > 0 {
		cfg.Search.MaxThreads = v
	}
	if v, _ := cmd.Flags().GetInt64("max-active-tasks"); v >= 0 {
		cfg.Search.MaxActiveTasks = v
	}
	if v, _ := cmd.Flags().GetInt("max-parallel-objectives"); v > 0 {
		cfg.Search.MaxParallelObjectives = v
	}
}

// parseFaultString parses "name/0" or "name/1", the same shorthand the
// teacher's ParseFaultString uses.
func parseFaultString(s string) (string, int, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid fault string %q, want name/0 or name/1", s)
	}
	stuckAt, err := strconv.Atoi(parts[1])
	if err != nil || (stuckAt != 0 && stuckAt != 1) {
		return "", 0, fmt.Errorf("invalid stuck-at value in %q, want 0 or 1", s)
	}
	return parts[0], stuckAt, nil
}
