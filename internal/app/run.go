package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/exemplar/internal/ctxlog"
	"github.com/vk/exemplar/internal/report"
	"github.com/vk/exemplar/internal/runner"
)

// ErrRunFailed marks a run in which at least one example failed. The report
// has already been rendered when this is returned; the entrypoint only needs
// it to choose the process exit code.
var ErrRunFailed = errors.New("run failed")

// Run executes the configured command against the populated registry.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", cfg.Command)

	switch cfg.Command {
	case CommandList:
		return a.list(cfg)
	case CommandRun:
		return a.run(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// list prints the registered examples (or the loaded suites) without running
// anything. It is a pure query and never fails once startup has succeeded.
func (a *App) list(cfg *Config) error {
	theme := report.ThemeByName(cfg.Theme)

	if cfg.Suites {
		if a.suites.Len() == 0 {
			fmt.Fprintln(a.outW, theme.Muted.Render("no suites loaded"))
			return nil
		}
		for _, s := range a.suites.All() {
			fmt.Fprintf(a.outW, "%s  %s\n", theme.Bold.Render(s.Name), theme.Muted.Render(s.Description))
		}
		return nil
	}

	seq := a.registry.All()
	if cfg.Category != "" {
		seq = a.registry.ByCategory(cfg.Category)
	}

	count := 0
	for ex := range seq {
		// Pad before styling: ANSI escapes would throw off %-*s widths.
		fmt.Fprintf(a.outW, "%s %s %s\n",
			theme.Bold.Render(fmt.Sprintf("%-26s", ex.Name)),
			theme.Muted.Render(fmt.Sprintf("%-18s", ex.Category)),
			ex.Title)
		count++
	}
	if count == 0 {
		fmt.Fprintln(a.outW, theme.Muted.Render("no examples registered"))
	}
	return nil
}

// run executes the configured selection and renders the report. The outcome
// of individual examples never aborts the run; only the aggregate result
// decides the returned error.
func (a *App) run(ctx context.Context, cfg *Config) error {
	renderer, err := report.NewRenderer(cfg.Format, report.ThemeByName(cfg.Theme))
	if err != nil {
		return err
	}

	rep, err := a.execute(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(a.outW, renderer.Render(rep))
	a.logger.Info("Run finished.", "total", rep.Total, "passed", rep.Passed, "failed", rep.Failed)

	if !rep.Ok() {
		return fmt.Errorf("%w: %d of %d examples failed", ErrRunFailed, rep.Failed, rep.Total)
	}
	return nil
}

// execute builds the runner for the selection and produces the report.
func (a *App) execute(ctx context.Context, cfg *Config) (report.Report, error) {
	timeout := cfg.Timeout

	var names []string
	switch {
	case cfg.Name != "":
		r := runner.New(a.registry, runner.WithTimeout(timeout))
		outcome, err := r.RunOne(ctx, cfg.Name)
		if err != nil {
			return report.Report{}, err
		}
		return report.Summarize([]report.Outcome{outcome}), nil

	case cfg.Suite != "":
		suite, err := a.suites.Get(cfg.Suite)
		if err != nil {
			return report.Report{}, err
		}
		if suite.Timeout > 0 {
			timeout = suite.Timeout
		}
		names = suite.Select(a.registry)

	default:
		r := runner.New(a.registry,
			runner.WithTimeout(timeout),
			runner.WithWorkers(cfg.Workers))
		return r.RunAll(ctx, cfg.Category), nil
	}

	r := runner.New(a.registry,
		runner.WithTimeout(timeout),
		runner.WithWorkers(cfg.Workers))
	rep, err := r.RunNames(ctx, names)
	if err != nil {
		// Validated suites cannot name unknown examples; this guards the
		// registry/manifest contract rather than a user input.
		return report.Report{}, fmt.Errorf("suite %q selection failed: %w", cfg.Suite, err)
	}
	return rep, nil
}
