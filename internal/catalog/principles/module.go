// Package principles contributes the builtin design-principle demonstrations
// to the example registry.
package principles

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every principle example with the registry.
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
			Name:     "principle_srp",
			Category: example.CategoryPrinciple,
			Title:    "single responsibility: one reason to change",
			Action:   runSRP,
		},
		{
			Name:     "principle_ocp",
			Category: example.CategoryPrinciple,
			Title:    "open/closed: extend behavior without editing it",
			Action:   runOCP,
		},
		{
			Name:     "principle_dip",
			Category: example.CategoryPrinciple,
			Title:    "dependency inversion: depend on interfaces",
			Action:   runDIP,
		},
	}
}

// formatter only formats; storage only stores. Splitting them is the whole
// demonstration.
type formatter struct{}

func (formatter) format(items []string) string {
	return "- " + strings.Join(items, "\n- ")
}

type store struct{ lines []string }

func (s *store) save(text string) { s.lines = append(s.lines, text) }

func runSRP(ctx context.Context) error {
	w := example.Output(ctx)
	f := formatter{}
	s := &store{}
	s.save(f.format([]string{"format", "store"}))

	fmt.Fprintln(w, "formatting and persistence live in separate types:")
	for _, line := range s.lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

type discount interface {
	apply(cents int) int
}

type noDiscount struct{}

func (noDiscount) apply(cents int) int { return cents }

type holidayDiscount struct{}

func (holidayDiscount) apply(cents int) int { return cents * 90 / 100 }

func runOCP(ctx context.Context) error {
	w := example.Output(ctx)
	fmt.Fprintln(w, "new pricing rules are new types, not edits to a switch:")
	for _, d := range []discount{noDiscount{}, holidayDiscount{}} {
		fmt.Fprintf(w, "  1000 cents -> %d cents (%T)\n", d.apply(1000), d)
	}
	return nil
}

type notifier interface {
	notify(msg string) string
}

type emailNotifier struct{}

func (emailNotifier) notify(msg string) string { return "email: " + msg }

// greeter depends on the notifier abstraction, never on a concrete channel.
type greeter struct{ n notifier }

func (g greeter) greet(name string) string { return g.n.notify("hello " + name) }

func runDIP(ctx context.Context) error {
	w := example.Output(ctx)
	g := greeter{n: emailNotifier{}}
	fmt.Fprintln(w, "high-level policy wired to a low-level detail via an interface:")
	fmt.Fprintf(w, "  %s\n", g.greet("gopher"))
	return nil
}
