// Package example defines the data model for a single registrable
// demonstration unit: a stable name, a category tag, a human-readable title,
// and a zero-argument fallible action.
//
// Actions never receive collaborator services directly. The runner injects an
// output writer (and a logger, via ctxlog) into the context, so an action's
// only contract with the rest of the system is "write to Output(ctx), return
// an error on failure".
package example

import (
	"context"
	"io"
)

// Known category tags used by the builtin catalog. The registry treats
// categories as opaque strings; these constants only keep the catalog and
// manifests from drifting apart.
const (
	CategoryKeyword          = "keyword"
	CategoryPrinciple        = "principle"
	CategoryPatternBasic     = "pattern-basic"
	CategoryPatternOptimized = "pattern-optimized"
)

// ActionFunc is the runnable body of an example. It reports demonstration
// output through Output(ctx) and signals failure by returning an error.
type ActionFunc func(ctx context.Context) error

// Example is one named, self-contained demonstration unit. Instances are
// built during the registration phase and are immutable afterwards.
type Example struct {
	// Name is the unique, stable identifier used for lookup and CLI selection.
	Name string

	// Category classifies the example; many examples share a category.
	Category string

	// Title is a human-readable label used in listings and reports.
	Title string

	// Action performs the demonstration.
	Action ActionFunc
}

// outputKey is an unexported type to prevent collisions with context keys
// from other packages.
type outputKey struct{}

// WithOutput returns a new context carrying w as the example output writer.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// Output extracts the example output writer from a context. Actions invoked
// outside a runner (for instance directly from a test) get io.Discard rather
// than a nil writer.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok {
		return w
	}
	return io.Discard
}
