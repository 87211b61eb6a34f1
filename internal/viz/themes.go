package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the live view. Particles keep their
// material colours; Text is used for springs and the panel values.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// Themes in cycling order. The first is the default.
var Themes = []Theme{
	{
		Name:      "classic",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#00ff00"),
		Accent:    lipgloss.Color("#ff0000"),
		Text:      lipgloss.Color("#d0d0d0"),
		Muted:     lipgloss.Color("#707070"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffd000"),
		Error:     lipgloss.Color("#ff3030"),
	},
	{
		Name:      "blueprint",
		Primary:   lipgloss.Color("#9cd0ff"),
		Secondary: lipgloss.Color("#4f9be8"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#cfe6ff"),
		Muted:     lipgloss.Color("#3d6b99"),
		Success:   lipgloss.Color("#7fe0c0"),
		Warning:   lipgloss.Color("#ffe08a"),
		Error:     lipgloss.Color("#ff8080"),
	},
	{
		Name:      "amber",
		Primary:   lipgloss.Color("#ffb000"),
		Secondary: lipgloss.Color("#cc8800"),
		Accent:    lipgloss.Color("#ffd966"),
		Text:      lipgloss.Color("#ffc640"),
		Muted:     lipgloss.Color("#7a5200"),
		Success:   lipgloss.Color("#ffd966"),
		Warning:   lipgloss.Color("#ff8c00"),
		Error:     lipgloss.Color("#ff4020"),
	},
}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
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

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
