package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. The frame is three vertical bands: a fixed
// header, phase-dependent content, and a fixed footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()
	header := m.renderHeader(styles)
	footer := m.renderFooter(styles)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch m.phase {
	case phaseLoading:
		content = m.renderLoading(styles, contentHeight)
	case phaseRunning:
		content = m.renderRunning(styles, contentHeight)
	case phaseComplete:
		content = fillHeight(m.renderResults(styles, contentHeight), contentHeight)
	case phaseError:
		content = m.renderErrorPanel(styles, contentHeight)
	}

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader(styles Styles) string {
	title := styles.Logo.Render("SEOSCOPE") +
		styles.Muted.Render("  ·  Interactive Audit Dashboard")
	target := styles.Muted.Render("Analyzing: ") + styles.Text.Render(m.url)

	line1 := styles.Header.Width(m.width).Render(title)
	line2 := styles.Header.Width(m.width).Render(target)
	return line1 + "\n" + line2
}

func (m Model) renderFooter(styles Styles) string {
	var help string
	if m.phase == phaseComplete {
		help = strings.Join([]string{
			bindingHelp(m.keys.NextTab, "Switch tabs"),
			bindingHelp(m.keys.NextIssue, "Next issue"),
			bindingHelp(m.keys.PrevIssue, "Previous issue"),
			"PgUp/PgDn: Scroll",
			bindingHelp(m.keys.CycleTheme, "Theme"),
			bindingHelp(m.keys.Quit, "Quit"),
		}, "  |  ")
	} else {
		help = "Please wait for audit to complete...  |  " + bindingHelp(m.keys.Quit, "Quit")
	}
	return styles.Footer.Width(m.width).Render(help)
}

func (m Model) renderLoading(styles Styles, height int) string {
	body := styles.Warning.Render("Initializing audit...") + "\n\n" +
		styles.Muted.Render("Please wait while we set up the environment.")
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderRunning(styles Styles, height int) string {
	gaugeWidth := m.width - 10
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	if gaugeWidth > 60 {
		gaugeWidth = 60
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Label.Render("Audit Progress"),
		"",
		renderGauge(m.progress, m.theme.Success, gaugeWidth),
		"",
		styles.Text.Render(m.statusMsg),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderErrorPanel(styles Styles, height int) string {
	msg := wrapText(m.errMsg, min(m.width-4, 80))
	body := styles.Danger.Render("Error") + "\n\n" + styles.Text.Render(msg)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderGauge draws a solid-fill percentage bar.
func renderGauge(pct int, color string, width int) string {
	bar := progress.New(progress.WithSolidFill(color), progress.WithWidth(width))
	return bar.ViewAs(float64(pct) / 100)
}

func bindingHelp(b key.Binding, desc string) string {
	return b.Help().Key + ": " + desc
}
