package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/agbru/parbench/internal/errors"
	"github.com/agbru/parbench/internal/hashwork"
)

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("parbench", nil, &errBuf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("cfg = %+v, want %+v", cfg, Defaults())
	}
	if cfg.Iterations != 500_000 || cfg.Algo != hashwork.SHA256 || cfg.Tasks != 0 {
		t.Errorf("defaults do not reproduce the plain benchmark: %+v", cfg)
	}
	if errBuf.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errBuf.String())
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"--tasks", "3", "--iterations", "1000", "--algo", "blake2b-256",
		"-d", "--progress=false", "-v", "--metrics-file", "/tmp/parbench.prom",
	}
	cfg, err := ParseConfig("parbench", args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := AppConfig{
		Tasks: 3, Iterations: 1000, Algo: "blake2b-256",
		Details: true, Progress: false, Verbose: true, MetricsFile: "/tmp/parbench.prom",
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative tasks", []string{"--tasks", "-1"}},
		{"zero iterations", []string{"--iterations", "0"}},
		{"unknown algorithm", []string{"--algo", "md5"}},
		{"positional argument", []string{"extra"}},
		{"unknown flag", []string{"--threads", "4"}},
		{"non-numeric tasks", []string{"--tasks", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("parbench", tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("parbench", []string{"--help"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	out := errBuf.String()
	for _, want := range []string{"Usage: parbench", "-tasks", "-algo", EnvPrefix} {
		if !strings.Contains(out, want) {
			t.Errorf("usage should mention %q, got:\n%s", want, out)
		}
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PARBENCH_TASKS", "2")
	t.Setenv("PARBENCH_ITERATIONS", "42")
	t.Setenv("PARBENCH_ALGO", "sha512")
	t.Setenv("PARBENCH_DETAILS", "yes")
	t.Setenv("PARBENCH_PROGRESS", "0")
	t.Setenv("PARBENCH_VERBOSE", "TRUE")
	t.Setenv("PARBENCH_METRICS_FILE", "out.prom")

	cfg, err := ParseConfig("parbench", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := AppConfig{
		Tasks: 2, Iterations: 42, Algo: "sha512",
		Details: true, Progress: false, Verbose: true, MetricsFile: "out.prom",
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("PARBENCH_TASKS", "2")
	t.Setenv("PARBENCH_VERBOSE", "true")

	cfg, err := ParseConfig("parbench", []string{"--tasks", "5", "-v=false"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tasks != 5 {
		t.Errorf("Tasks = %d, want flag value 5", cfg.Tasks)
	}
	if cfg.Verbose {
		t.Error("Verbose should follow the -v flag, not the environment")
	}
}

func TestParseConfig_EnvInvalidValuesIgnoredOrRejected(t *testing.T) {
	t.Setenv("PARBENCH_TASKS", "lots")
	t.Setenv("PARBENCH_DETAILS", "maybe")

	cfg, err := ParseConfig("parbench", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unparsable env values should be ignored, got %v", err)
	}
	if cfg.Tasks != 0 || cfg.Details {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	t.Setenv("PARBENCH_ITERATIONS", "-5")
	if _, err := ParseConfig("parbench", nil, &bytes.Buffer{}); err == nil {
		t.Error("parsable but invalid env values must still be validated")
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		in         string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"sometimes", true, true},
		{"sometimes", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.defaultVal, got, tt.want)
		}
	}
}
