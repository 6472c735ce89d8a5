package manifest

import (
	"fmt"
	"time"

	"github.com/vk/exemplar/internal/registry"
)

// Suite is the loaded, format-agnostic representation of one suite block.
type Suite struct {
	Name        string
	Description string
	Include     []string
	Categories  []string

	// Timeout overrides the global per-example timeout for this suite's
	// runs. Zero means "no override".
	Timeout time.Duration

	// File records where the suite was declared, for error messages.
	File string
}

// Model holds every suite loaded from a manifest path, in a stable order.
type Model struct {
	byName map[string]*Suite
	order  []string
}

func newModel() *Model {
	return &Model{byName: make(map[string]*Suite)}
}

// NewEmptyModel returns a model with no suites, for runs without manifests.
func NewEmptyModel() *Model {
	return newModel()
}

// UnknownSuiteError reports a request for a suite no manifest declares.
// Asking for a nonexistent suite is a usage error, not a run failure, and
// the CLI maps it to its own exit code.
type UnknownSuiteError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownSuiteError) Error() string {
	return fmt.Sprintf("unknown suite %q", e.Name)
}

func (m *Model) add(s *Suite) error {
	if prev, exists := m.byName[s.Name]; exists {
		return fmt.Errorf("suite %q in %s is already declared in %s", s.Name, s.File, prev.File)
	}
	m.byName[s.Name] = s
	m.order = append(m.order, s.Name)
	return nil
}

// Get returns the suite with the given name.
func (m *Model) Get(name string) (*Suite, error) {
	s, ok := m.byName[name]
	if !ok {
		return nil, &UnknownSuiteError{Name: name}
	}
	return s, nil
}

// All returns the loaded suites in declaration order.
func (m *Model) All() []*Suite {
	suites := make([]*Suite, 0, len(m.order))
	for _, name := range m.order {
		suites = append(suites, m.byName[name])
	}
	return suites
}

// Len returns the number of loaded suites.
func (m *Model) Len() int {
	return len(m.order)
}

// Select resolves a suite against the registry: the union of its explicit
// includes and its category matches, in registry order, without duplicates.
func (s *Suite) Select(reg *registry.Registry) []string {
	wantName := make(map[string]struct{}, len(s.Include))
	for _, n := range s.Include {
		wantName[n] = struct{}{}
	}
	wantCat := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		wantCat[c] = struct{}{}
	}

	var names []string
	for ex := range reg.All() {
		if _, ok := wantName[ex.Name]; ok {
			names = append(names, ex.Name)
			continue
		}
		if _, ok := wantCat[ex.Category]; ok {
			names = append(names, ex.Name)
		}
	}
	return names
}
