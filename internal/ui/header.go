package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const logoText = "🌌 AstroDash"

// renderHeader renders the top bar: logo, location, load status and the
// time the forecast arrived.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(logoText, styles.Logo)}
	if loc := m.location(); loc != "" {
		parts = append(parts, bg.Render(loc, styles.MutedText))
	}

	switch {
	case !m.snapshot.Loaded:
		parts = append(parts,
			m.spinner.View()+bg.Space()+bg.Render("Loading forecast", styles.WarningText))
	case m.snapshot.Failed():
		parts = append(parts, bg.Render("● ERROR", styles.DangerText))
	default:
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	if !m.snapshot.FetchedAt.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.FetchedAt.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// location prefers the city name the API reported over raw coordinates.
func (m Model) location() string {
	if m.snapshot.CityName != "" {
		return m.snapshot.CityName
	}
	if m.config != nil {
		return m.config.Location()
	}
	return ""
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
