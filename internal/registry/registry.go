package registry

import (
	"errors"
	"iter"

	"github.com/vk/exemplar/internal/example"
)

// Module is the interface a group of related examples implements to be
// registered. Registration happens in an explicit startup phase before any
// runner activity, never from init().
type Module interface {
	Register(r *Registry) error
}

// Registry is the authoritative mapping from example name to example. It is
// populated once during startup and read-only afterwards, which makes it safe
// to share without locking during execution.
type Registry struct {
	byName map[string]*example.Example
	order  []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*example.Example),
	}
}

// Register inserts an example. The name must be non-empty and unique; a
// duplicate fails with *DuplicateError and leaves the first registration
// untouched.
func (r *Registry) Register(ex *example.Example) error {
	if ex == nil {
		return errors.New("cannot register a nil example")
	}
	if ex.Name == "" {
		return errors.New("cannot register an example with an empty name")
	}
	if ex.Action == nil {
		return &InvalidExampleError{Name: ex.Name, Reason: "action is nil"}
	}
	if _, exists := r.byName[ex.Name]; exists {
		return &DuplicateError{Name: ex.Name}
	}
	r.byName[ex.Name] = ex
	r.order = append(r.order, ex.Name)
	return nil
}

// Get returns the example registered under name, or *NotFoundError.
func (r *Registry) Get(name string) (*example.Example, error) {
	ex, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return ex, nil
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns a restartable sequence over every registered example in
// insertion order. Enumeration order is deterministic so repeated runs
// produce stable output.
func (r *Registry) All() iter.Seq[*example.Example] {
	return func(yield func(*example.Example) bool) {
		for _, name := range r.order {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}

// ByCategory returns a restartable sequence over the registered examples
// carrying the given category tag, preserving insertion order.
func (r *Registry) ByCategory(category string) iter.Seq[*example.Example] {
	return func(yield func(*example.Example) bool) {
		for _, name := range r.order {
			ex := r.byName[name]
			if ex.Category != category {
				continue
			}
			if !yield(ex) {
				return
			}
		}
	}
}

// Categories returns every distinct category tag in first-seen order.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, name := range r.order {
		cat := r.byName[name].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		cats = append(cats, cat)
	}
	return cats
}
