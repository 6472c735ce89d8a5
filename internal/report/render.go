package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Renderer formats a Report for display. Text and JSON renderings are both
// derived from the same Report data, so interactive and CI consumers see the
// same facts.
type Renderer interface {
	Render(rep Report) string
}

// NewRenderer resolves a --format flag value to a renderer.
func NewRenderer(format string, theme Theme) (Renderer, error) {
	switch format {
	case "text":
		return &Text{theme: theme}, nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Text renders a report as styled terminal output via lipgloss.
type Text struct {
	theme Theme
}

// NewText creates a text renderer with the given theme.
func NewText(theme Theme) *Text {
	return &Text{theme: theme}
}

// Render formats the per-example lines, failure details, and the summary.
func (t *Text) Render(rep Report) string {
	if rep.Total == 0 {
		return t.theme.Muted.Render("no examples selected") + "\n"
	}

	var sb strings.Builder
	for _, o := range rep.Outcomes {
		icon, style := t.theme.Pass, t.theme.Success
		if !o.Succeeded {
			icon, style = t.theme.Fail, t.theme.Error
		}
		sb.WriteString("  ")
		sb.WriteString(style.Render(fmt.Sprintf("%s %s", icon, o.Name)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(o.Duration.Round(time.Microsecond).String()))
		sb.WriteString("\n")
	}

	if failures := rep.Failures(); len(failures) > 0 {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Bold.Render("failures:"))
		sb.WriteString("\n")
		for _, o := range failures {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Error.Render(fmt.Sprintf("%s %s", t.theme.Fail, o.Name)))
			sb.WriteString(t.theme.Muted.Render(" — " + o.Error))
			sb.WriteString("\n")
			if out := strings.TrimRight(o.Output, "\n"); out != "" {
				for _, line := range strings.Split(out, "\n") {
					sb.WriteString("      " + line + "\n")
				}
			}
		}
	}

	sb.WriteString("\n")
	summary := fmt.Sprintf("%d examples, %d passed, %d failed (%s)",
		rep.Total, rep.Passed, rep.Failed, rep.Elapsed.Round(time.Microsecond))
	if rep.Ok() {
		sb.WriteString(t.theme.Success.Render(summary))
	} else {
		sb.WriteString(t.theme.Error.Render(summary))
	}
	sb.WriteString("\n")
	return sb.String()
}

// JSON renders a report as a stable machine-readable structure for CI.
type JSON struct{}

// jsonOutcome mirrors Outcome with a millisecond duration for scripting.
type jsonOutcome struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Succeeded  bool   `json:"succeeded"`
	DurationMS int64  `json:"duration_ms"`
	Output     string `json:"output,omitempty"`
	Error      string `json:"error,omitempty"`
}

type jsonReport struct {
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Outcomes []jsonOutcome `json:"outcomes"`
}

// Render marshals the report. Marshalling a struct of plain fields cannot
// fail, so errors degrade to an error object rather than propagating.
func (j *JSON) Render(rep Report) string {
	out := jsonReport{
		Total:    rep.Total,
		Passed:   rep.Passed,
		Failed:   rep.Failed,
		Outcomes: make([]jsonOutcome, 0, len(rep.Outcomes)),
	}
	for _, o := range rep.Outcomes {
		out.Outcomes = append(out.Outcomes, jsonOutcome{
			Name:       o.Name,
			Title:      o.Title,
			Succeeded:  o.Succeeded,
			DurationMS: o.Duration.Milliseconds(),
			Output:     o.Output,
			Error:      o.Error,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON) + "\n"
	}
	return string(data) + "\n"
}
