package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seoscope/internal/audit"
	"seoscope/internal/config"
)

// phase is the lifecycle stage of the current audit run.
type phase int

const (
	phaseLoading phase = iota
	phaseRunning
	phaseComplete
	phaseError
)

const tabCount = 3

// Tab indices into the result view.
const (
	tabOverview = iota
	tabIssues
	tabAnalysis
)

const defaultTick = 250 * time.Millisecond

// workerClosedMessage is shown when the update channel closes before the
// worker sent its closing signal.
const workerClosedMessage = "audit worker exited unexpectedly"

// Model is the root application state for Bubble Tea. It owns the
// lifecycle phase, the stored result, and the navigation cursor; the
// update channel is its only link to the background worker.
type Model struct {
	url        string
	updates    <-chan audit.Update
	closed     bool
	tick       time.Duration
	keys       keyMap
	theme      Theme
	cfg        config.Config
	configPath string

	// Lifecycle
	phase     phase
	progress  int
	statusMsg string
	errMsg    string
	result    *audit.Result

	// Navigation
	selectedTab   int
	selectedIssue int
	scrollOffset  int

	width  int
	height int
	ready  bool
}

// New builds the initial model.
func New(opts Options) Model {
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	return Model{
		url:        opts.URL,
		updates:    opts.Updates,
		tick:       tick,
		keys:       defaultKeyMap(),
		theme:      GetTheme(opts.Config.Theme),
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		phase:      phaseLoading,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.drainUpdates()
		return m, tickCmd(m.tick)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextIssue):
		m.nextIssue()
	case key.Matches(msg, m.keys.PrevIssue):
		m.previousIssue()
	case key.Matches(msg, m.keys.NextTab):
		m.nextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.previousTab()
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollUp()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = config.SaveTheme(m.configPath, m.cfg, m.theme.Name)
	}

	return m, nil
}

// drainUpdates consumes every update currently queued without blocking.
// A closed channel before the worker's closing signal is converted to an
// Error phase; closure after a terminal phase never regresses it.
func (m *Model) drainUpdates() {
	if m.updates == nil || m.closed {
		return
	}
	for {
		select {
		case u, ok := <-m.updates:
			if !ok {
				m.closed = true
				if m.phase == phaseLoading || m.phase == phaseRunning {
					m.phase = phaseError
					m.errMsg = workerClosedMessage
				}
				return
			}
			m.applyUpdate(u)
		default:
			return
		}
	}
}

// applyUpdate is the lifecycle transition function.
func (m *Model) applyUpdate(u audit.Update) {
	switch u := u.(type) {
	case audit.Progress:
		// Stale progress from a finished producer must not regress
		// visible state.
		if m.phase == phaseLoading || m.phase == phaseRunning {
			m.phase = phaseRunning
			m.progress = u.Percent()
			m.statusMsg = u.Message
		}

	case audit.ResultUpdate:
		// A late success always wins, even over a prior Error: the most
		// informative terminal state reachable from the sequence.
		result := u.Result
		m.result = &result
		m.phase = phaseComplete

	case audit.ErrorUpdate:
		m.phase = phaseError
		m.errMsg = u.Message

	case audit.Done:
		if m.phase == phaseRunning {
			m.phase = phaseComplete
		}
	}
}

// nextIssue advances the selection, clamped to the last issue. Navigation
// is live whenever a result exists, regardless of phase.
func (m *Model) nextIssue() {
	if m.result == nil {
		return
	}
	if m.selectedIssue < len(m.result.Issues)-1 {
		m.selectedIssue++
		m.scrollOffset = 0
	}
}

// previousIssue retreats the selection, clamped at zero.
func (m *Model) previousIssue() {
	if m.selectedIssue > 0 {
		m.selectedIssue--
		m.scrollOffset = 0
	}
}

// nextTab wraps forward through the cyclic tab set.
func (m *Model) nextTab() {
	m.selectedTab = (m.selectedTab + 1) % tabCount
	m.scrollOffset = 0
}

// previousTab wraps backward through the cyclic tab set.
func (m *Model) previousTab() {
	m.selectedTab = (m.selectedTab + tabCount - 1) % tabCount
	m.scrollOffset = 0
}

// scrollDown increments the offset without bound; the renderer clamps it
// to the visible content.
func (m *Model) scrollDown() {
	m.scrollOffset++
}

// scrollUp decrements the offset with a floor of zero.
func (m *Model) scrollUp() {
	if m.scrollOffset > 0 {
		m.scrollOffset--
	}
}

// Messages

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
