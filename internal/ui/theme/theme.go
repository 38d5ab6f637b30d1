// Package theme holds the terminal styles used by human-facing output.
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style

	enabled bool
}

// Default returns the coloured theme.
func Default() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Muted:   lipgloss.NewStyle().Faint(true),
		enabled: true,
	}
}

// Plain returns a theme that leaves text untouched.
func Plain() Theme {
	return Theme{}
}

// For picks Default when color is true and Plain otherwise.
func For(color bool) Theme {
	if color {
		return Default()
	}
	return Plain()
}

func (t Theme) Enabled() bool { return t.enabled }

func (t Theme) render(s lipgloss.Style, text string) string {
	if !t.enabled {
		return text
	}
	return s.Render(text)
}

func (t Theme) RenderTitle(text string) string { return t.render(t.Title, text) }

func (t Theme) RenderLabel(text string) string { return t.render(t.Label, text) }

func (t Theme) RenderWarning(text string) string { return t.render(t.Warning, text) }

func (t Theme) RenderMuted(text string) string { return t.render(t.Muted, text) }
