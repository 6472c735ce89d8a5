package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/exemplar/internal/ctxlog"
	"github.com/vk/exemplar/internal/registry"
)

// Validate performs a strict parity check between the loaded suites and the
// registered examples. Every `include` entry must name a registered example
// and every `categories` entry must match at least one, so a typo fails
// startup instead of silently selecting nothing.
func (m *Model) Validate(ctx context.Context, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	known := make(map[string]struct{})
	for _, cat := range reg.Categories() {
		known[cat] = struct{}{}
	}

	var errs []string
	for _, suite := range m.All() {
		for _, name := range suite.Include {
			if _, err := reg.Get(name); err != nil {
				errs = append(errs, fmt.Sprintf("suite %q: include %q does not match any registered example", suite.Name, name))
			}
		}
		for _, cat := range suite.Categories {
			if _, ok := known[cat]; !ok {
				errs = append(errs, fmt.Sprintf("suite %q: category %q has no registered examples", suite.Name, cat))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("suite manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Suite manifest validation passed.", "suites", m.Len())
	return nil
}
