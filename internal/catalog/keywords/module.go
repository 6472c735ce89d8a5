// Package keywords contributes the builtin keyword demonstrations to the
// example registry.
package keywords

import (
	"context"
	"fmt"

	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers every keyword example with the registry.
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
			Name:     "kw_defer",
			Category: example.CategoryKeyword,
			Title:    "defer: LIFO cleanup at function exit",
			Action:   runDefer,
		},
		{
			Name:     "kw_iota",
			Category: example.CategoryKeyword,
			Title:    "iota: self-incrementing enumerator",
			Action:   runIota,
		},
		{
			Name:     "kw_range",
			Category: example.CategoryKeyword,
			Title:    "range: uniform iteration over collections",
			Action:   runRange,
		},
		{
			Name:     "kw_select",
			Category: example.CategoryKeyword,
			Title:    "select: multiplexing channel operations",
			Action:   runSelect,
		},
	}
}

func runDefer(ctx context.Context) error {
	w := example.Output(ctx)
	fmt.Fprintln(w, "deferred calls run last-in first-out when the function returns:")
	for i := 1; i <= 3; i++ {
		defer fmt.Fprintf(w, "  deferred #%d\n", i)
	}
	fmt.Fprintln(w, "function body done")
	return nil
}

type weekday int

const (
	monday weekday = iota
	tuesday
	wednesday
)

func runIota(ctx context.Context) error {
	w := example.Output(ctx)
	fmt.Fprintln(w, "iota numbers constants within a const block:")
	fmt.Fprintf(w, "  monday=%d tuesday=%d wednesday=%d\n", monday, tuesday, wednesday)
	return nil
}

func runRange(ctx context.Context) error {
	w := example.Output(ctx)
	primes := []int{2, 3, 5, 7}
	fmt.Fprintln(w, "range yields index and element for a slice:")
	for i, p := range primes {
		fmt.Fprintf(w, "  primes[%d] = %d\n", i, p)
	}
	return nil
}

func runSelect(ctx context.Context) error {
	w := example.Output(ctx)
	a := make(chan string, 1)
	b := make(chan string, 1)
	a <- "from a"
	b <- "from b"

	fmt.Fprintln(w, "select picks whichever channel is ready:")
	for range 2 {
		select {
		case msg := <-a:
			fmt.Fprintf(w, "  received %q\n", msg)
		case msg := <-b:
			fmt.Fprintf(w, "  received %q\n", msg)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
