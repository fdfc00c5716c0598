package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme for bars and chrome.
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Highlight lipgloss.Color
	Sorted    lipgloss.Color
	Title     lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Bar:       lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#ff00ff"),
		Sorted:    lipgloss.Color("#00ff88"),
		Title:     lipgloss.Color("#00cccc"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Bar:       lipgloss.Color("#00cc00"),
		Highlight: lipgloss.Color("#ccff99"),
		Sorted:    lipgloss.Color("#88ff88"),
		Title:     lipgloss.Color("#00ff00"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Bar:       lipgloss.Color("#cccccc"),
		Highlight: lipgloss.Color("#0088ff"),
		Sorted:    lipgloss.Color("#ffffff"),
		Title:     lipgloss.Color("#ffffff"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Border:    lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Bar:       lipgloss.Color("#00a8cc"),
		Highlight: lipgloss.Color("#ffd700"),
		Sorted:    lipgloss.Color("#00ff88"),
		Title:     lipgloss.Color("#0077be"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#224466"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Bar:       lipgloss.Color("#feca57"),
		Highlight: lipgloss.Color("#ff6b6b"),
		Sorted:    lipgloss.Color("#5fd068"),
		Title:     lipgloss.Color("#ff9ff3"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Border:    lipgloss.Color("#5b3b5c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns the named theme, or cyberpunk for an unknown name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
