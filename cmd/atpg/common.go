package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/internal/circuit"
	"github.com/fyerfyer/podem-atpg/internal/config"
	"github.com/fyerfyer/podem-atpg/internal/ioformat"
	"github.com/fyerfyer/podem-atpg/internal/obs"
)

// loadConfig starts from config.Default, layers in --config if given,
// then lets the caller's flag overrides win, per SPEC_FULL's
// "flags win" note on §D's supplemented CLI/config behavior.
func loadConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading --config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) obs.Logger {
	level := obs.Level(cfg.Logging.Level)
	if verbose {
		level = obs.LevelDebug
	}
	return obs.NewLogger(obs.Config{
		Level:  level,
		Pretty: cfg.Logging.Pretty || isTTY(),
		Output: os.Stderr,
	})
}

func isTTY() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// requireFlagOrConfig returns the flag value if set, else the config
// fallback, erroring if both are empty.
func requireFlagOrConfig(cmd *cobra.Command, flagName, fallback, what string) (string, error) {
	val, _ := cmd.Flags().GetString(flagName)
	if val == "" {
		val = fallback
	}
	if val == "" {
		return "", fmt.Errorf("--%s is required (or set it in --config)", flagName)
	}
	return val, nil
}

func loadCircuit(path string) (*circuit.Circuit, error) {
	src, err := ioformat.ParseNetlistFile(path)
	if err != nil {
		return nil, err
	}
	c, err := circuit.Build(src)
	if err != nil {
		return nil, fmt.Errorf("building circuit from %q: %w", path, err)
	}
	return c, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func closeOutput(f *os.File) {
	if f != os.Stdout {
		f.Close()
	}
}
