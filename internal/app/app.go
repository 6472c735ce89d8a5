package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/exemplar/internal/ctxlog"
	"github.com/vk/exemplar/internal/manifest"
	"github.com/vk/exemplar/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: a populated registry, optionally a loaded suite model, and an
// isolated logger.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	suites   *manifest.Model
}

// NewApp is the constructor for the main application. It runs the explicit
// registration phase (every module, in order), loads suite manifests when a
// path is configured, and validates the suites against the registry. Any
// error here is a configuration bug and aborts startup; nothing runs.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			return nil, fmt.Errorf("failed to populate registry: %w", err)
		}
	}
	logger.Debug("All catalog modules registered.", "modules", len(modules), "examples", reg.Len())

	suites := manifest.NewEmptyModel()
	if cfg.ManifestsPath != "" {
		loaded, err := manifest.Load(ctx, cfg.ManifestsPath)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(ctx, reg); err != nil {
			return nil, err
		}
		suites = loaded
		logger.Debug("Suite manifests loaded and validated.", "suites", suites.Len())
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		suites:   suites,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
