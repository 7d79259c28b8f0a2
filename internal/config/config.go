// Package config is the YAML-backed run configuration surface (§6
// "Configuration Surface"), mirroring the chaos-utils example's
// pkg/config: a plain struct with yaml tags, loaded once at startup
// and then overridden field-by-field by whichever CLI flags the user
// actually passed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fyerfyer/podem-atpg/internal/podem"
)

// Config is the full run configuration: the four options §6 names as
// affecting the core, plus the I/O and observability surface a
// runnable CLI needs around them.
type Config struct {
	Circuit CircuitConfig `yaml:"circuit"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CircuitConfig names the netlist and, for the simulate path, the
// vector file to read.
type CircuitConfig struct {
	NetlistFile string `yaml:"netlist_file"`
	VectorFile  string `yaml:"vector_file"`
}

// SearchConfig is §6's Configuration Surface table, verbatim.
type SearchConfig struct {
	ParallelMode          string `yaml:"parallel_mode"`
	MaxThreads            int    `yaml:"max_threads"`
	MaxActiveTasks        int64  `yaml:"max_active_tasks"`
	MaxParallelObjectives int    `yaml:"max_parallel_objectives"`
}

// LoggingConfig selects the zerolog level and output formatting.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// MetricsConfig controls whether/where a Prometheus exposition dump is
// written at the end of a run. An empty File disables the dump.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the serial, single-threaded baseline configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			ParallelMode:          string(podem.ModeSerial),
			MaxThreads:            1,
			MaxActiveTasks:        0,
			MaxParallelObjectives: 1,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and unmarshals a YAML config file, starting from Default
// so unset fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields the core actually branches on.
func (c Config) Validate() error {
	switch podem.ParallelMode(c.Search.ParallelMode) {
	case podem.ModeSerial, podem.ModeAcrossDecisions, podem.ModeAcrossObjectives:
	default:
		return fmt.Errorf("config: invalid parallel_mode %q", c.Search.ParallelMode)
	}
	if c.Search.MaxThreads < 1 {
		return fmt.Errorf("config: max_threads must be >= 1, got %d", c.Search.MaxThreads)
	}
	if c.Search.MaxActiveTasks < 0 {
		return fmt.Errorf("config: max_active_tasks must be >= 0, got %d", c.Search.MaxActiveTasks)
	}
	if c.Search.MaxParallelObjectives < 1 {
		return fmt.Errorf("config: max_parallel_objectives must be >= 1, got %d", c.Search.MaxParallelObjectives)
	}
	return nil
}

// PodemConfig projects the search options onto a podem.Config.
func (c Config) PodemConfig() podem.Config {
	return podem.Config{
		ParallelMode:          podem.ParallelMode(c.Search.ParallelMode),
		MaxThreads:            c.Search.MaxThreads,
		MaxActiveTasks:        c.Search.MaxActiveTasks,
		MaxParallelObjectives: c.Search.MaxParallelObjectives,
	}
}
