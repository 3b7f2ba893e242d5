package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HealthClass buckets a health score for display.
type HealthClass int

const (
	HealthCritical HealthClass = iota
	HealthCaution
	HealthHealthy
)

// ClassifyHealth maps a score to its class. The boundaries are a
// contract: 90 and above is healthy, 70-89 caution, below 70 critical.
func ClassifyHealth(score int) HealthClass {
	switch {
	case score >= 90:
		return HealthHealthy
	case score >= 70:
		return HealthCaution
	default:
		return HealthCritical
	}
}

const analysisPlaceholder = "No analysis available yet. Run the AI-powered audit for detailed insights."

var tabLabels = [tabCount]string{"Overview", "Issues", "Analysis"}

// renderResults draws the tab bar and the selected tab's body.
func (m Model) renderResults(styles Styles, height int) string {
	tabs := m.renderTabBar(styles)

	bodyHeight := height - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	switch m.selectedTab {
	case tabOverview:
		body = m.renderOverview(styles)
	case tabIssues:
		body = m.renderIssues(styles, bodyHeight)
	case tabAnalysis:
		body = m.renderAnalysis(styles)
	}

	return tabs + "\n\n" + body
}

func (m Model) renderTabBar(styles Styles) string {
	parts := make([]string, 0, tabCount)
	for i, label := range tabLabels {
		if i == m.selectedTab {
			parts = append(parts, styles.TabActive.Render("[ "+label+" ]"))
		} else {
			parts = append(parts, styles.TabInactive.Render("  "+label+"  "))
		}
	}
	return " " + strings.Join(parts, styles.Faint.Render(" · "))
}

// renderOverview draws the metrics table and the health gauge. A run can
// close without delivering a result; the overview stays blank then.
func (m Model) renderOverview(styles Styles) string {
	if m.result == nil {
		return " " + styles.Muted.Render("No result received.")
	}
	metrics := m.result.Metrics
	health := ClassifyHealth(metrics.HealthScore)
	healthStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.HealthColor(health))).
		Bold(true)

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Pages Scanned", fmt.Sprintf("%d", metrics.PagesScanned), styles.Text},
		{"Total Issues", fmt.Sprintf("%d", metrics.TotalIssues), styles.Warning},
		{"Critical Issues", fmt.Sprintf("%d", metrics.CriticalIssues), styles.Danger},
		{"Warnings", fmt.Sprintf("%d", metrics.Warnings), styles.Warning},
		{"Info", fmt.Sprintf("%d", metrics.Info), styles.Info},
		{"Health Score", fmt.Sprintf("%d%%", metrics.HealthScore), healthStyle},
	}

	var b strings.Builder
	b.WriteString(" " + styles.Label.Render("Metrics") + "\n\n")
	for _, row := range rows {
		// Pad before styling so ANSI codes don't skew the column width.
		label := fmt.Sprintf("%-18s", row.label)
		b.WriteString(" " + styles.Muted.Render(label) + " " + row.style.Render(row.value) + "\n")
	}

	gaugeWidth := m.width - 10
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	if gaugeWidth > 60 {
		gaugeWidth = 60
	}
	b.WriteString("\n " + styles.Label.Render("Overall Health") + "\n")
	b.WriteString(" " + renderGauge(metrics.HealthScore, m.theme.HealthColor(health), gaugeWidth))

	return b.String()
}

func (m Model) renderAnalysis(styles Styles) string {
	text := analysisPlaceholder
	if m.result != nil && m.result.Analysis != "" {
		text = m.result.Analysis
	}
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return " " + styles.Label.Render("AI Analysis") + "\n\n" +
		styles.Text.Render(wrapText(text, width))
}
