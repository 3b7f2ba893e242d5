package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	Quit       key.Binding
	NextIssue  key.Binding
	PrevIssue  key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	CycleTheme key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/Esc", "Quit"),
		),
		NextIssue: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next issue"),
		),
		PrevIssue: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous issue"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift-Tab", "Previous tab"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "Scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "Scroll up"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
	}
}
