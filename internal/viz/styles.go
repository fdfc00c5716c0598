package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	subtle    lipgloss.Style
	text      lipgloss.Style
	accent    lipgloss.Style
	keyHint   lipgloss.Style
	bar       lipgloss.Style
	highlight lipgloss.Style
	sorted    lipgloss.Style
	panel     lipgloss.Style
	label     lipgloss.Style
	selected  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		text:      lipgloss.NewStyle().Foreground(t.Text),
		accent:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		keyHint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		bar:       lipgloss.NewStyle().Foreground(t.Bar),
		highlight: lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		sorted:    lipgloss.NewStyle().Foreground(t.Sorted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		selected: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
	}
}

// spinner returns one frame of the running indicator.
func spinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return frames[frame%len(frames)]
}

// meter renders v out of [lo, hi] as a fixed-width gauge.
func meter(v, lo, hi, width int) string {
	if hi <= lo {
		return strings.Repeat("░", width)
	}
	filled := (v - lo) * width / (hi - lo)
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func separator(width int, st lipgloss.Style) string {
	return st.Render(strings.Repeat("─", max(width, 0)))
}
