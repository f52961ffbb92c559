package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/astrodash/internal/almanac"
)

const cardsHeight = 5 // border + label + blank + value

type card struct {
	label string
	value string
	style lipgloss.Style
}

// summaryCards derives the three cards from the summary of the full list.
// Filtering never changes them.
func (m Model) summaryCards() []card {
	styles := m.theme.Styles()
	sum := m.snapshot.Summary

	low := "—"
	if sum.HasLowTemp {
		low = formatTemp(sum.LowTemp, m.tempUnit())
	}

	phase := orDash(sum.MoonPhase)
	if name := almanac.PhaseName(sum.MoonPhase); name != "" {
		phase += " " + name
	}

	return []card{
		{label: "🌡️ Low Temp", value: low, style: styles.ColdText},
		{label: "🌙 Moon Rise", value: orDash(sum.Moonrise), style: styles.MoonText},
		{label: "🪐 Moon Phase", value: phase, style: styles.MoonText},
	}
}

// renderCards lays the summary cards out side by side across the full width.
func (m Model) renderCards() string {
	cards := m.summaryCards()
	styles := m.theme.Styles()

	total := max(m.width, len(cards)*12)
	boxes := make([]string, 0, len(cards))
	used := 0
	for i, c := range cards {
		w := total / len(cards)
		if i == len(cards)-1 {
			w = total - used
		}
		used += w

		inner := max(w-4, 1)
		content := styles.MutedText.Render(truncate(c.label, inner)) + "\n\n" +
			c.style.Bold(true).Render(truncate(c.value, inner))

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Border)).
			Padding(0, 1).
			Width(w - 2).
			Render(content)
		boxes = append(boxes, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// tempUnit returns the label for the configured unit system.
func (m Model) tempUnit() string {
	if m.config == nil {
		return "°F"
	}
	return m.config.TemperatureUnit()
}
