package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/internal/faultsim"
	"github.com/fyerfyer/podem-atpg/internal/ioformat"
	"github.com/fyerfyer/podem-atpg/internal/levelize"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Batch-simulate a vector file against every stuck-at fault",
	Long: `Simulate levelizes the circuit and, for every input vector in the
vector file, evaluates all signal x {0,1} stuck-at faults (one
fault-free pass plus one forced pass per fault), reporting which
faults each vector detects.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().String("circuit", "", "circuit file in BENCH format (required, or set circuit.netlist_file in --config)")
	simulateCmd.Flags().String("vectors", "", "test-vector file (required, or set circuit.vector_file in --config)")
	simulateCmd.Flags().String("output", "", "detection matrix output file (default: stdout)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	circuitPath, err := requireFlagOrConfig(cmd, "circuit", cfg.Circuit.NetlistFile, "circuit")
	if err != nil {
		return err
	}
	vectorPath, err := requireFlagOrConfig(cmd, "vectors", cfg.Circuit.VectorFile, "vectors")
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	c, err := loadCircuit(circuitPath)
	if err != nil {
		return err
	}

	order, err := levelize.Compute(c)
	if err != nil {
		return fmt.Errorf("levelizing circuit: %w", err)
	}

	set, err := ioformat.ParseVectorFile(vectorPath, c)
	if err != nil {
		return fmt.Errorf("parsing vector file: %w", err)
	}
	logger.Info().Int("vectors", len(set.Bits)).Msg("vectors loaded")

	matrix, err := faultsim.Run(context.Background(), c, order, set.Reorder(c))
	if err != nil {
		return fmt.Errorf("faultsim: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	out, err := openOutput(outputPath)
	if err != nil {
		return fmt.Errorf("opening --output: %w", err)
	}
	defer closeOutput(out)

	return ioformat.WriteDetectionMatrix(out, c, set.Labels, matrix)
}
