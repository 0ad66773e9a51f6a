package face

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the face.
type Theme struct {
	Name       string
	Hour       lipgloss.Color
	Minute     lipgloss.Color
	Label      lipgloss.Color
	Background lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Hour:       lipgloss.Color("#ffffff"),
		Minute:     lipgloss.Color("#dddddd"),
		Label:      lipgloss.Color("#aaaaaa"),
		Background: lipgloss.Color("#000000"),
	}

	ThemeAmber = Theme{
		Name:       "amber",
		Hour:       lipgloss.Color("#ffb000"),
		Minute:     lipgloss.Color("#cc8c00"),
		Label:      lipgloss.Color("#805800"),
		Background: lipgloss.Color("#120a00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Hour:       lipgloss.Color("#00ff00"), // Green phosphor
		Minute:     lipgloss.Color("#00cc00"),
		Label:      lipgloss.Color("#005500"),
		Background: lipgloss.Color("#001100"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Hour:       lipgloss.Color("#e0f0ff"),
		Minute:     lipgloss.Color("#00a8cc"),
		Label:      lipgloss.Color("#4488aa"),
		Background: lipgloss.Color("#001a33"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeAmber,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

type styles struct {
	hour   lipgloss.Style
	minute lipgloss.Style
	label  lipgloss.Style
	frame  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		hour:   lipgloss.NewStyle().Foreground(t.Hour).Background(t.Background).Bold(true),
		minute: lipgloss.NewStyle().Foreground(t.Minute).Background(t.Background),
		label:  lipgloss.NewStyle().Foreground(t.Label).Background(t.Background),
		frame:  lipgloss.NewStyle().Background(t.Background).Padding(1, 2),
	}
}
