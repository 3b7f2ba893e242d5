package ui

import (
	"github.com/charmbracelet/lipgloss"

	"seoscope/internal/audit"
)

// Theme defines the color palette for the dashboard.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text  string
	Muted string
	Faint string

	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	SelectionBg   string
	SelectionText string
}

// SeverityColor maps an issue severity onto the palette.
func (t Theme) SeverityColor(s audit.Severity) string {
	switch s {
	case audit.SeverityCritical:
		return t.Danger
	case audit.SeverityWarning:
		return t.Warning
	default:
		return t.Info
	}
}

// HealthColor maps a health classification onto the palette.
func (t Theme) HealthColor(c HealthClass) string {
	switch c {
	case HealthHealthy:
		return t.Success
	case HealthCaution:
		return t.Warning
	default:
		return t.Danger
	}
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),

		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
	}
}

// Styles contains the lipgloss styles derived from a Theme.
type Styles struct {
	Text  lipgloss.Style
	Muted lipgloss.Style
	Faint lipgloss.Style

	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Info    lipgloss.Style

	Logo   lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Label  lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, defaulting to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:          "Nightfox",
		Background:    "#131a24",
		Surface:       "#192330",
		Border:        "#39506d",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Success:       "#81b29a",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		Info:          "#63cdcf",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:          "Kanagawa",
		Background:    "#16161D",
		Surface:       "#1F1F28",
		Border:        "#54546D",
		Text:          "#DCD7BA",
		Muted:         "#C8C093",
		Faint:         "#727169",
		Accent:        "#7E9CD8",
		Success:       "#98BB6C",
		Warning:       "#E6C384",
		Danger:        "#E46876",
		Info:          "#7FB4CA",
		SelectionBg:   "#2D4F67",
		SelectionText: "#DCD7BA",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:          "Slate",
		Background:    "#020617",
		Surface:       "#0f172a",
		Border:        "#334155",
		Text:          "#f1f5f9",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#22c55e",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		Info:          "#06b6d4",
		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",
	}
}
