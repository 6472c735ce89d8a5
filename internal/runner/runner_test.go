package runner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
)

func buildRegistry(t *testing.T, examples ...*example.Example) *registry.Registry {
	t.Helper()
	r := registry.New()
	for _, ex := range examples {
		require.NoError(t, r.Register(ex))
	}
	return r
}

func passing(name, category string) *example.Example {
	return &example.Example{
		Name:     name,
		Category: category,
		Title:    "demo " + name,
		Action: func(ctx context.Context) error {
			fmt.Fprintf(example.Output(ctx), "output of %s\n", name)
			return nil
		},
	}
}

func failing(name, message string) *example.Example {
	return &example.Example{
		Name:     name,
		Category: "keyword",
		Title:    "demo " + name,
		Action: func(ctx context.Context) error {
			return errors.New(message)
		},
	}
}

func TestRunAll_FailureIsolation(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := buildRegistry(t,
		passing("kw_auto", "keyword"),
		passing("kw_volatile", "keyword"),
		failing("dp_srp", "bad state"),
	)
	r := New(reg)

	// --- Act ---
	rep := r.RunAll(context.Background(), "")

	// --- Assert ---
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 2, rep.Passed)
	assert.Equal(t, 1, rep.Failed)

	failures := rep.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "dp_srp", failures[0].Name)
	assert.Equal(t, "bad state", failures[0].Error)
}

func TestRunAll_FailureDoesNotStopSubsequentExamples(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	after := &example.Example{
		Name:     "runs_after_failure",
		Category: "keyword",
		Title:    "runs after a failure",
		Action: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		},
	}

	reg := buildRegistry(t, failing("boom", "first fails"), after)
	rep := New(reg).RunAll(context.Background(), "")

	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, []string{"boom", "runs_after_failure"},
		[]string{rep.Outcomes[0].Name, rep.Outcomes[1].Name})
}

func TestRunAll_PanicIsRecoveredLocally(t *testing.T) {
	t.Parallel()

	panicking := &example.Example{
		Name:     "kw_panic",
		Category: "keyword",
		Title:    "panics mid-demonstration",
		Action: func(ctx context.Context) error {
			panic("unreachable state")
		},
	}

	reg := buildRegistry(t, panicking, passing("kw_after", "keyword"))
	rep := New(reg).RunAll(context.Background(), "")

	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Passed)
	assert.Contains(t, rep.Outcomes[0].Error, "panic: unreachable state")
}

func TestRunAll_CategoryFilter(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t,
		passing("dp_observer_basic", "pattern-basic"),
		passing("dp_observer_optimized", "pattern-optimized"),
		passing("dp_strategy_basic", "pattern-basic"),
	)

	rep := New(reg).RunAll(context.Background(), "pattern-basic")

	require.Equal(t, 2, rep.Total)
	assert.Equal(t, "dp_observer_basic", rep.Outcomes[0].Name)
	assert.Equal(t, "dp_strategy_basic", rep.Outcomes[1].Name)
}

func TestRunAll_EmptyRegistry(t *testing.T) {
	t.Parallel()

	rep := New(registry.New()).RunAll(context.Background(), "")

	assert.Zero(t, rep.Total)
	assert.Zero(t, rep.Passed)
	assert.Zero(t, rep.Failed)
	assert.True(t, rep.Ok())
}

func TestRunAll_IsIdempotent(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t,
		passing("kw_auto", "keyword"),
		failing("dp_srp", "bad state"),
	)
	r := New(reg)

	first := r.RunAll(context.Background(), "")
	second := r.RunAll(context.Background(), "")

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Passed, second.Passed)
	assert.Equal(t, first.Failed, second.Failed)
	for i := range first.Outcomes {
		assert.Equal(t, first.Outcomes[i].Name, second.Outcomes[i].Name)
		assert.Equal(t, first.Outcomes[i].Succeeded, second.Outcomes[i].Succeeded)
	}
}

func TestRunOne_NotFoundIsDistinguishableFromActionFailure(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t, failing("dp_srp", "bad state"))
	r := New(reg)

	// A registered example that fails: captured in the outcome, no error.
	outcome, err := r.RunOne(context.Background(), "dp_srp")
	require.NoError(t, err)
	assert.False(t, outcome.Succeeded)
	assert.Equal(t, "bad state", outcome.Error)

	// An unknown name: surfaced as *registry.NotFoundError, not an outcome.
	_, err = r.RunOne(context.Background(), "missing")
	var notFound *registry.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
}

func TestRunOne_CapturesOutputAndDuration(t *testing.T) {
	t.Parallel()

	reg := buildRegistry(t, passing("kw_auto", "keyword"))

	outcome, err := New(reg).RunOne(context.Background(), "kw_auto")

	require.NoError(t, err)
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, "output of kw_auto\n", outcome.Output)
	assert.GreaterOrEqual(t, outcome.Duration, time.Duration(0))
}

func TestRunNames_UnknownNameFailsBeforeAnythingRuns(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	counted := &example.Example{
		Name:     "counted",
		Category: "keyword",
		Title:    "counts invocations",
		Action: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		},
	}
	reg := buildRegistry(t, counted)

	_, err := New(reg).RunNames(context.Background(), []string{"counted", "missing"})

	var notFound *registry.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Zero(t, ran.Load(), "no example should run when the selection cannot be resolved")
}

func TestRunner_TimeoutFailsOnlyTheSlowExample(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	slow := &example.Example{
		Name:     "kw_slow",
		Category: "keyword",
		Title:    "hangs until released",
		Action: func(ctx context.Context) error {
			<-release
			return nil
		},
	}
	reg := buildRegistry(t, slow, passing("kw_after", "keyword"))

	rep := New(reg, WithTimeout(25*time.Millisecond)).RunAll(context.Background(), "")

	require.Equal(t, 2, rep.Total)
	assert.False(t, rep.Outcomes[0].Succeeded)
	assert.Contains(t, rep.Outcomes[0].Error, "timed out after 25ms")
	assert.Empty(t, rep.Outcomes[0].Output, "abandoned actions must not leak partial output")
	assert.True(t, rep.Outcomes[1].Succeeded, "the run continues past a timeout")
}

func TestRunner_ConcurrentModePreservesSelectionOrder(t *testing.T) {
	t.Parallel()

	var examples []*example.Example
	var want []string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("ex_%d", i)
		want = append(want, name)
		delay := time.Duration(8-i) * time.Millisecond // later entries finish first
		examples = append(examples, &example.Example{
			Name:     name,
			Category: "keyword",
			Title:    name,
			Action: func(ctx context.Context) error {
				time.Sleep(delay)
				fmt.Fprintf(example.Output(ctx), "only %s\n", name)
				return nil
			},
		})
	}
	reg := buildRegistry(t, examples...)

	rep := New(reg, WithWorkers(4)).RunAll(context.Background(), "")

	require.Equal(t, len(want), rep.Total)
	var got []string
	for _, o := range rep.Outcomes {
		got = append(got, o.Name)
		assert.Equal(t, fmt.Sprintf("only %s\n", o.Name), o.Output,
			"per-example output must not interleave across workers")
	}
	assert.Equal(t, want, got)
}

func TestRunner_ContextCancellationStopsWaitingOnAnAction(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	blocked := &example.Example{
		Name:     "kw_blocked",
		Category: "keyword",
		Title:    "blocks until released",
		Action: func(ctx context.Context) error {
			<-release
			return nil
		},
	}
	reg := buildRegistry(t, blocked)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	outcome, err := New(reg, WithTimeout(time.Minute)).RunOne(ctx, "kw_blocked")

	require.NoError(t, err)
	assert.False(t, outcome.Succeeded)
	assert.Contains(t, outcome.Error, context.Canceled.Error())
}
