package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderIssues draws the split issue view: a selectable list on the left
// and a scrollable detail pane for the selected issue on the right.
func (m Model) renderIssues(styles Styles, height int) string {
	if m.result == nil || len(m.result.Issues) == 0 {
		return " " + styles.Muted.Render("No issues recorded.")
	}

	listWidth := m.width * 2 / 5
	if listWidth < 20 {
		listWidth = 20
	}
	detailWidth := m.width - listWidth - 3
	if detailWidth < 20 {
		detailWidth = 20
	}

	left := m.renderIssueList(styles, listWidth, height)
	right := m.renderIssueDetail(styles, detailWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m Model) renderIssueList(styles Styles, width, height int) string {
	issues := m.result.Issues

	lines := []string{
		styles.Label.Render(fmt.Sprintf("Issues (%d/%d)", m.selectedIssue+1, len(issues))),
		"",
	}

	// Window the list around the selection when it outgrows the pane.
	visible := height - len(lines)
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selectedIssue >= visible {
		start = m.selectedIssue - visible + 1
	}
	end := start + visible
	if end > len(issues) {
		end = len(issues)
	}

	for i := start; i < end; i++ {
		issue := issues[i]
		icon := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.SeverityColor(issue.Severity))).
			Render(issue.Severity.Icon())
		row := truncate(fmt.Sprintf("%s - %s", issue.Category, issue.Title), width-3)
		if i == m.selectedIssue {
			lines = append(lines, icon+" "+styles.Selected.Render(row))
		} else {
			lines = append(lines, icon+" "+styles.Text.Render(row))
		}
	}

	list := lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
	return list
}

func (m Model) renderIssueDetail(styles Styles, width, height int) string {
	issue := m.result.Issues[m.selectedIssue]
	severityStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.SeverityColor(issue.Severity))).
		Bold(true)

	var lines []string
	lines = append(lines,
		styles.Label.Render("Severity: ")+severityStyle.Render(strings.ToUpper(string(issue.Severity))),
		"",
		styles.Label.Render("Description:"),
	)
	lines = append(lines, wrapLines(issue.Description, width)...)
	lines = append(lines, "", styles.Label.Render("Affected Pages:"))
	for _, page := range issue.AffectedPages {
		lines = append(lines, "  • "+truncate(page, width-4))
	}
	lines = append(lines, "", styles.Success.Render("Recommendation:"))
	lines = append(lines, wrapLines(issue.Recommendation, width)...)

	visible := clampScroll(lines, m.scrollOffset, height)
	return lipgloss.NewStyle().Width(width).Render(strings.Join(visible, "\n"))
}
