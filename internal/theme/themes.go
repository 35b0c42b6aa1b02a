package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the page
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
}

// Available themes
var (
	ThemeViolet = Theme{
		Name:       "violet",
		Primary:    lipgloss.Color("#7c3aed"), // violet-600
		Secondary:  lipgloss.Color("#9333ea"), // purple-600
		Accent:     lipgloss.Color("#a78bfa"),
		Background: lipgloss.Color("#0f0b1e"),
		Text:       lipgloss.Color("#f5f3ff"),
		Muted:      lipgloss.Color("#8b8aa3"),
		Surface:    lipgloss.Color("#1e1b4b"),
		Border:     lipgloss.Color("#3b3670"),
		Success:    lipgloss.Color("#8b5cf6"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0284c7"), // sky-600
		Secondary:  lipgloss.Color("#0891b2"), // cyan-600
		Accent:     lipgloss.Color("#7dd3fc"),
		Background: lipgloss.Color("#082f49"),
		Text:       lipgloss.Color("#f0f9ff"),
		Muted:      lipgloss.Color("#7a9bb3"),
		Surface:    lipgloss.Color("#0c4a6e"),
		Border:     lipgloss.Color("#1e6a96"),
		Success:    lipgloss.Color("#34d399"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#fafafa"), // zinc-50
		Secondary:  lipgloss.Color("#d4d4d8"),
		Accent:     lipgloss.Color("#a1a1aa"),
		Background: lipgloss.Color("#09090b"),
		Text:       lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#71717a"),
		Surface:    lipgloss.Color("#18181b"),
		Border:     lipgloss.Color("#3f3f46"),
		Success:    lipgloss.Color("#a3e635"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#e11d48"), // rose-600
		Secondary:  lipgloss.Color("#f59e0b"), // amber-500
		Accent:     lipgloss.Color("#fda4af"),
		Background: lipgloss.Color("#1c0a10"),
		Text:       lipgloss.Color("#fff1f2"),
		Muted:      lipgloss.Color("#a8848c"),
		Surface:    lipgloss.Color("#3b0d1c"),
		Border:     lipgloss.Color("#6b2137"),
		Success:    lipgloss.Color("#fbbf24"),
	}

	// Themes in the order the theme key cycles through them.
	Themes = []Theme{
		ThemeViolet,
		ThemeOcean,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to violet
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeViolet
}

// Next returns the theme after t, wrapping around
func Next(t Theme) Theme {
	for i, other := range Themes {
		if other.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeViolet
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for _, t := range Themes {
		names = append(names, t.Name)
	}
	return names
}
