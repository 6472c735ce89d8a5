// Package patterns contributes the builtin design-pattern demonstrations, in
// basic and optimized variants, to the example registry.
//
// The basic variant of each pattern shows the textbook shape; the optimized
// variant shows the idiomatic shortcut Go allows (function values instead of
// single-method interfaces, channels instead of hand-rolled listener lists).
package patterns

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every pattern example with the registry.
func (m *Module) Register(r *registry.Registry) error {
	for _, ex := range examples() {
		if err := r.Register(ex); err != nil {
			return err
		}
	}
	return nil
}

func examples() []*example.Example {
	return []*example.Example{
		{
			Name:     "dp_observer_basic",
			Category: example.CategoryPatternBasic,
			Title:    "observer: subject notifies registered listeners",
			Action:   runObserverBasic,
		},
		{
			Name:     "dp_observer_optimized",
			Category: example.CategoryPatternOptimized,
			Title:    "observer: callbacks instead of a listener interface",
			Action:   runObserverOptimized,
		},
		{
			Name:     "dp_strategy_basic",
			Category: example.CategoryPatternBasic,
			Title:    "strategy: interchangeable algorithm objects",
			Action:   runStrategyBasic,
		},
		{
			Name:     "dp_strategy_optimized",
			Category: example.CategoryPatternOptimized,
			Title:    "strategy: plain function values",
			Action:   runStrategyOptimized,
		},
		{
			Name:     "dp_builder",
			Category: example.CategoryPatternBasic,
			Title:    "builder: stepwise construction of a value",
			Action:   runBuilder,
		},
	}
}

type listener interface {
	onEvent(event string)
}

type subject struct {
	listeners []listener
}

func (s *subject) attach(l listener) { s.listeners = append(s.listeners, l) }

func (s *subject) publish(event string) {
	for _, l := range s.listeners {
		l.onEvent(event)
	}
}

type logListener struct {
	name string
	sink *strings.Builder
}

func (l *logListener) onEvent(event string) {
	fmt.Fprintf(l.sink, "  %s saw %q\n", l.name, event)
}

func runObserverBasic(ctx context.Context) error {
	w := example.Output(ctx)
	var sink strings.Builder
	s := &subject{}
	s.attach(&logListener{name: "audit", sink: &sink})
	s.attach(&logListener{name: "cache", sink: &sink})
	s.publish("user.created")

	fmt.Fprintln(w, "each attached listener receives the published event:")
	fmt.Fprint(w, sink.String())
	return nil
}

// broadcaster is the same pattern with the listener interface collapsed into
// a callback slice.
type broadcaster struct {
	subscribers []func(event string)
}

func (b *broadcaster) subscribe(fn func(event string)) { b.subscribers = append(b.subscribers, fn) }
func (b *broadcaster) publish(event string) {
	for _, fn := range b.subscribers {
		fn(event)
	}
}

func runObserverOptimized(ctx context.Context) error {
	w := example.Output(ctx)
	b := &broadcaster{}
	for _, name := range []string{"audit", "cache"} {
		b.subscribe(func(event string) {
			fmt.Fprintf(w, "  %s saw %q\n", name, event)
		})
	}
	fmt.Fprintln(w, "closures replace the one-method listener interface:")
	b.publish("user.created")
	return nil
}

type compressor interface {
	compress(data string) string
}

type runLength struct{}

func (runLength) compress(data string) string {
	return fmt.Sprintf("rle(%d bytes)", len(data))
}

type dictionary struct{}

func (dictionary) compress(data string) string {
	return fmt.Sprintf("dict(%d bytes)", len(data))
}

func runStrategyBasic(ctx context.Context) error {
	w := example.Output(ctx)
	fmt.Fprintln(w, "the caller swaps algorithm objects behind one interface:")
	for _, c := range []compressor{runLength{}, dictionary{}} {
		fmt.Fprintf(w, "  %s\n", c.compress("payload"))
	}
	return nil
}

func runStrategyOptimized(ctx context.Context) error {
	w := example.Output(ctx)
	strategies := map[string]func(string) string{
		"upper": strings.ToUpper,
		"title": func(s string) string { return strings.ToUpper(s[:1]) + s[1:] },
	}
	fmt.Fprintln(w, "a func type is a one-method interface without the ceremony:")
	for _, key := range []string{"upper", "title"} {
		fmt.Fprintf(w, "  %s -> %s\n", key, strategies[key]("gopher"))
	}
	return nil
}

type request struct {
	method  string
	url     string
	headers []string
}

type requestBuilder struct {
	r request
}

func (b *requestBuilder) method(m string) *requestBuilder { b.r.method = m; return b }
func (b *requestBuilder) url(u string) *requestBuilder    { b.r.url = u; return b }
func (b *requestBuilder) header(h string) *requestBuilder {
	b.r.headers = append(b.r.headers, h)
	return b
}
func (b *requestBuilder) build() request { return b.r }

func runBuilder(ctx context.Context) error {
	w := example.Output(ctx)
	req := (&requestBuilder{}).
		method("GET").
		url("https://example.test/items").
		header("Accept: application/json").
		build()

	fmt.Fprintln(w, "chained setters assemble the value, build() freezes it:")
	fmt.Fprintf(w, "  %s %s %v\n", req.method, req.url, req.headers)
	return nil
}
