// Package config parses the command line and environment into an AppConfig.
//
// Resolution order (highest priority first):
//  1. CLI flags
//  2. Environment variables prefixed with EnvPrefix
//  3. Defaults, which reproduce the plain benchmark: one SHA-256 task per
//     usable core, 500,000 rounds each.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/parbench/internal/errors"
	"github.com/agbru/parbench/internal/hashwork"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "PARBENCH_"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Tasks is the number of tasks per phase. Zero means one per usable core.
	Tasks int
	// Iterations is the number of digest rounds each task performs.
	Iterations int
	// Algo names the digest function (see hashwork.Names).
	Algo string
	// Details prints a comparison table on stderr after both phases.
	Details bool
	// Progress shows a spinner on stderr while a phase runs (terminals only).
	Progress bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// MetricsFile, when set, receives the run's metrics in Prometheus text format.
	MetricsFile string
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() AppConfig {
	return AppConfig{
		Tasks:      0,
		Iterations: hashwork.DefaultIterations,
		Algo:       hashwork.DefaultAlgorithm,
		Progress:   true,
	}
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and parse errors are written to errWriter. A --help request returns
// flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Tasks, "tasks", cfg.Tasks, "Number of tasks per phase (0 = one per usable CPU core).")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Digest rounds performed by each task.")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("Digest algorithm: %s.", strings.Join(hashwork.Names(), ", ")))
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "Print a comparison table (speedup, efficiency) on stderr.")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "Shorthand for --details.")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a spinner on stderr while a phase runs.")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging on stderr.")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Shorthand for --verbose.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus text-format metrics to this path.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Times an iterative hashing workload run sequentially and then on one goroutine per task.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (%s*) apply when the matching flag is not set.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Tasks < 0 {
		return apperrors.NewConfigError("--tasks must be >= 0, got %d", c.Tasks)
	}
	if c.Iterations < 1 {
		return apperrors.NewConfigError("--iterations must be >= 1, got %d", c.Iterations)
	}
	if _, err := hashwork.Lookup(c.Algo); err != nil {
		return err
	}
	return nil
}
