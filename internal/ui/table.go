package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/astrodash/internal/almanac"
)

// Rows taken by everything other than the table box.
const chromeHeight = 1 + cardsHeight + 1 + 1 // header, cards, controls, footer

type column struct {
	title string
	width int
}

var forecastColumns = []column{
	{"Date", 12},
	{"Temperature", 13},
	{"Moon Rise", 11},
	{"Moon Set", 10},
	{"Moon Phase", 0}, // takes the rest
}

// tableHeight returns the outer height of the table box.
func (m Model) tableHeight() int {
	return max(m.height-chromeHeight, 4)
}

// tableCapacity returns how many data rows fit in the box.
func (m Model) tableCapacity() int {
	if m.height == 0 {
		return 0
	}
	return m.tableHeight() - 3 // borders + column header
}

// tableTitle returns "Forecast (n)", or "Forecast (visible/n)" while a
// filter is active.
func (m Model) tableTitle() string {
	total := len(m.snapshot.Days)
	if m.criteria().IsZero() {
		return fmt.Sprintf("Forecast (%d)", total)
	}
	return fmt.Sprintf("Forecast (%d/%d)", len(m.visibleDays()), total)
}

// renderTable renders the forecast table inside a titled box.
func (m Model) renderTable() string {
	height := m.tableHeight()
	innerWidth := max(m.width-2, 10)
	focused := !m.searching
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	var content string
	if msg := m.emptyTableMessage(); msg != "" {
		styles := m.theme.Styles()
		content = m.renderColumnHeader(innerWidth, bgColor) + "\n" +
			lipgloss.Place(innerWidth, max(height-3, 1), lipgloss.Center, lipgloss.Center,
				styles.MutedText.Render(msg),
				lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
	} else {
		content = m.renderColumnHeader(innerWidth, bgColor) + "\n" + m.renderRows(innerWidth, bgColor)
	}

	return m.renderTitledBox(m.tableTitle(), content, innerWidth+2, height, focused)
}

// emptyTableMessage returns the placeholder shown instead of rows, or "".
func (m Model) emptyTableMessage() string {
	switch {
	case !m.snapshot.Loaded:
		return "Loading forecast..."
	case len(m.snapshot.Days) == 0 && m.snapshot.Failed():
		return "Forecast unavailable"
	case len(m.snapshot.Days) == 0:
		return "No forecast days returned"
	case len(m.visibleDays()) == 0:
		return "No days match the current filter"
	}
	return ""
}

func (m Model) renderColumnHeader(width int, bgColor string) string {
	bg := NewBgStyle(bgColor)
	style := m.theme.Styles().AccentText.Bold(true)

	cells := make([]string, 0, len(forecastColumns))
	for _, col := range forecastColumns {
		cells = append(cells, bg.Render(padCell(col.title, col.width), style))
	}
	return bg.FillLine(ansi.Truncate(strings.Join(cells, bg.Space()), width, ""), width)
}

// renderRows renders the visible window of filtered rows.
func (m Model) renderRows(width int, bgColor string) string {
	days := m.visibleDays()
	capacity := max(m.tableCapacity(), 1)
	end := min(m.offset+capacity, len(days))

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		selected := i == m.selectedRow && !m.searching
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		line := lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Width(width).
			Render(ansi.Truncate(m.formatRowContent(days[i], rowBg, selected), width, ""))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// formatRowContent formats one forecast day. Selected rows use
// SelectionText for every cell to keep contrast.
func (m Model) formatRowContent(day almanac.EnrichedDay, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	phase := day.MoonPhase
	if name := almanac.PhaseName(day.MoonPhase); name != "" {
		phase += " " + name
	}
	values := []string{
		day.Datetime,
		formatTemp(day.Temp, m.tempUnit()),
		day.Moonrise,
		day.Moonset,
		phase,
	}

	cellStyles := m.rowStyles(day, selected)
	cells := make([]string, 0, len(values))
	for i, v := range values {
		w := forecastColumns[i].width
		if w > 0 {
			v = padCell(truncate(v, w), w)
		}
		cells = append(cells, bg.Render(v, cellStyles[i]))
	}
	return strings.Join(cells, bg.Space())
}

// rowStyles returns one style per column. The selected row uses the theme's
// Selected style for every cell to keep contrast.
func (m Model) rowStyles(day almanac.EnrichedDay, selected bool) []lipgloss.Style {
	styles := m.theme.Styles()
	if selected {
		return []lipgloss.Style{styles.Selected, styles.Selected, styles.Selected, styles.Selected, styles.Selected}
	}
	cellStyles := []lipgloss.Style{
		styles.Text,
		styles.ColdText,
		styles.MutedText,
		styles.MutedText,
		styles.MoonText,
	}
	if day.Temp == m.snapshot.Summary.LowTemp && m.snapshot.Summary.HasLowTemp {
		cellStyles[1] = styles.InfoText.Bold(true)
	}
	return cellStyles
}

// renderTitledBox renders content in a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	if lipgloss.Width(title) > innerWidth-2 {
		title = truncate(title, max(innerWidth-2, 1))
	}
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(ansi.Truncate(line, innerWidth, ""))+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
