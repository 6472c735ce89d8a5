package report

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors and icons used by the text renderer.
type Theme struct {
	Name    string
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Pass    string
	Fail    string
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Pass:    "✓",
		Fail:    "✗",
	}
}

// MonoTheme returns an uncolored theme for dumb terminals and CI logs.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Pass:    "ok",
		Fail:    "FAIL",
	}
}

// ThemeByName resolves a theme flag value. Unknown names fall back to the
// default theme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
