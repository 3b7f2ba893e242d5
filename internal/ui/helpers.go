package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens s to at most max runes, ending with an ellipsis when
// anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// wrapText soft-wraps s at the given width.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// wrapLines wraps s at the given width and returns the resulting lines.
func wrapLines(s string, width int) []string {
	return strings.Split(wrapText(s, width), "\n")
}

// clampScroll returns the window of lines visible at the given offset.
// The model lets the offset grow without bound; the renderer clamps it so
// scrolling past the end pins the view to the last page.
func clampScroll(lines []string, offset, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	max := len(lines) - height
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+height]
}

// fillHeight pads or trims s to exactly height lines so the footer band
// stays pinned to the bottom of the frame.
func fillHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
