package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"seoscope/internal/audit"
	"seoscope/internal/config"
)

// Options configure the UI runtime.
type Options struct {
	URL        string
	Updates    <-chan audit.Update
	Config     config.Config
	ConfigPath string
	Tick       time.Duration
}

// Run starts the dashboard and blocks until the user quits. The Bubble
// Tea runtime owns raw mode and the alternate screen and restores the
// terminal on every exit path, including panics.
func Run(opts Options) error {
	if opts.Updates == nil {
		return fmt.Errorf("ui requires an update channel")
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
