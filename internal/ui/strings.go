package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padCell pads s with spaces to the given display width. Wide glyphs such as
// the moon phase markers count as two cells.
func padCell(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// formatTemp renders a temperature without trailing zeros: 35 -> "35°F",
// 35.5 -> "35.5°F".
func formatTemp(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// orDash returns value, or an em dash placeholder when it is blank.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}
