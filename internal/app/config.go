package app

import (
	"errors"
	"fmt"
	"time"
)

// Commands accepted by the application.
const (
	CommandList = "list"
	CommandRun  = "run"
)

// Config holds all the necessary configuration for an App instance to run.
// It is produced by the CLI layer and validated here.
type Config struct {
	Command string

	// Selection.
	All      bool
	Name     string
	Category string
	Suite    string

	// Suites lists suite definitions instead of examples (list command only).
	Suites bool

	// ManifestsPath points at the directory (or single file) holding suite
	// manifests. Empty disables manifest loading.
	ManifestsPath string

	// Rendering.
	Format string
	Theme  string

	// Execution.
	Timeout time.Duration
	Workers int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. It returns the validated copy or the first
// violation found.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandList, CommandRun:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Command == CommandRun {
		selections := 0
		if cfg.All {
			selections++
		}
		if cfg.Name != "" {
			selections++
		}
		if cfg.Suite != "" {
			selections++
		}
		if selections != 1 {
			return nil, errors.New("run requires exactly one of --all, --name, or --suite")
		}
		if cfg.Suite != "" && cfg.ManifestsPath == "" {
			return nil, errors.New("--suite requires --manifests")
		}
		if cfg.Category != "" && !cfg.All {
			return nil, errors.New("--category only applies to run --all")
		}
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}
	if cfg.Theme != "default" && cfg.Theme != "mono" {
		return nil, fmt.Errorf("invalid theme %q: must be 'default' or 'mono'", cfg.Theme)
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("timeout cannot be negative")
	}
	if cfg.Workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}

	return &cfg, nil
}
