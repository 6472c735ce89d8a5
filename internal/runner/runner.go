// Package runner executes a selection of examples with per-example failure
// isolation and uniform error capture.
//
// The runner treats every action as untrusted, opaque code: a returned error,
// a panic, or an overrun of the configured timeout all become a failed
// outcome for that one example, and the rest of the selection keeps running.
// Nothing an action does can crash the run.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vk/exemplar/internal/ctxlog"
	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
	"github.com/vk/exemplar/internal/report"
)

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets a per-example wall-clock budget. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithWorkers sets the number of examples executed concurrently. Values
// below 2 keep the default sequential mode. Outcome order is the selection
// order in either mode.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// Runner executes registered examples. It only reads from the registry, so a
// single Runner is safe to reuse across runs.
type Runner struct {
	reg     *registry.Registry
	timeout time.Duration
	workers int
}

// New creates a Runner over the given registry.
func New(reg *registry.Registry, opts ...Option) *Runner {
	r := &Runner{reg: reg, workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOne looks up and executes a single example by name. The error return is
// non-nil only when the name is unknown (*registry.NotFoundError), so callers
// can tell a usage error apart from an example that ran and failed; action
// failures are captured inside the returned outcome.
func (r *Runner) RunOne(ctx context.Context, name string) (report.Outcome, error) {
	ex, err := r.reg.Get(name)
	if err != nil {
		return report.Outcome{}, err
	}
	return r.execute(ctx, ex), nil
}

// RunAll executes every registered example, optionally filtered to one
// category, in registry order.
func (r *Runner) RunAll(ctx context.Context, category string) report.Report {
	var selection []*example.Example
	seq := r.reg.All()
	if category != "" {
		seq = r.reg.ByCategory(category)
	}
	for ex := range seq {
		selection = append(selection, ex)
	}
	return r.run(ctx, selection)
}

// RunNames executes the named examples in the given order. The whole
// selection is resolved before anything runs, so an unknown name fails the
// call instead of producing a partial report.
func (r *Runner) RunNames(ctx context.Context, names []string) (report.Report, error) {
	selection := make([]*example.Example, 0, len(names))
	for _, name := range names {
		ex, err := r.reg.Get(name)
		if err != nil {
			return report.Report{}, err
		}
		selection = append(selection, ex)
	}
	return r.run(ctx, selection), nil
}

// run executes the selection and aggregates the outcomes. Outcomes are
// written back by index, so the report order always matches the selection
// order regardless of scheduling.
func (r *Runner) run(ctx context.Context, selection []*example.Example) report.Report {
	outcomes := make([]report.Outcome, len(selection))

	if r.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)
		for i, ex := range selection {
			g.Go(func() error {
				outcomes[i] = r.execute(gctx, ex)
				return nil
			})
		}
		// Goroutines never return errors; failures live in the outcomes.
		_ = g.Wait()
	} else {
		for i, ex := range selection {
			outcomes[i] = r.execute(ctx, ex)
		}
	}

	return report.Summarize(outcomes)
}

// execute runs one example under the failure boundary, recording duration
// and the example's buffered output.
func (r *Runner) execute(ctx context.Context, ex *example.Example) report.Outcome {
	logger := ctxlog.FromContext(ctx).With("example", ex.Name)

	var buf bytes.Buffer
	runCtx := example.WithOutput(ctx, &buf)

	logger.Debug("Starting example.")
	start := time.Now()
	abandoned, err := r.invoke(runCtx, ex)
	elapsed := time.Since(start)

	outcome := report.Outcome{
		Name:      ex.Name,
		Title:     ex.Title,
		Succeeded: err == nil,
		Duration:  elapsed,
	}
	// An abandoned action may still be writing to its buffer, so a timed-out
	// or cancelled outcome never reports output.
	if !abandoned {
		outcome.Output = buf.String()
	}
	if err != nil {
		outcome.Error = err.Error()
		logger.Warn("Example failed.", "error", err, "duration", elapsed)
	} else {
		logger.Debug("Example finished.", "duration", elapsed)
	}
	return outcome
}

// invoke calls the action, applying the timeout when one is configured. The
// boolean reports whether the action was abandoned mid-flight (timeout or
// context cancellation); an abandoned action's goroutine cannot be killed
// and keeps running detached while the run moves on.
func (r *Runner) invoke(ctx context.Context, ex *example.Example) (bool, error) {
	if r.timeout <= 0 {
		return false, callSafely(ctx, ex)
	}

	done := make(chan error, 1)
	go func() {
		done <- callSafely(ctx, ex)
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return false, err
	case <-ctx.Done():
		return true, ctx.Err()
	case <-timer.C:
		return true, &timeoutError{limit: r.timeout}
	}
}

// timeoutError marks an outcome whose action was abandoned mid-flight.
type timeoutError struct {
	limit time.Duration
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("timed out after %s", e.limit)
}

// callSafely is the recovery boundary: a panicking action becomes an error
// for its own outcome instead of crashing the run.
func callSafely(ctx context.Context, ex *example.Example) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return ex.Action(ctx)
}
