// Command atpg is the CLI front end for the PODEM test generator and
// batched fault simulator: a cobra root command with "run" (per-fault
// ATPG) and "simulate" (batched two-valued fault simulation)
// subcommands, replacing the teacher's flat flag-based cmd/main.go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "atpg",
	Short:   "Automatic test pattern generation and fault simulation for combinational netlists",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (optional; flags override its fields)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
