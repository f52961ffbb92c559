package ui

import (
	"github.com/five82/astrodash/internal/almanac"
)

const allPhasesLabel = "All Phases"

// renderControls renders the date search input and the phase selector.
func (m Model) renderControls() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = bg.Render("/ Enter Date", styles.FaintText)
	}

	parts := []string{
		search,
		bg.Render("Phase:", styles.MutedText) + bg.Space() + bg.Render(m.phaseLabel(), styles.MoonText) +
			bg.Space() + bg.Render("(f/F)", styles.FaintText),
	}
	if !m.criteria().IsZero() {
		parts = append(parts, bg.Render("esc clear", styles.FaintText))
	}

	return bg.FillLine(" "+bg.Join(parts, "   "), m.width)
}

// phaseLabel returns the selector text for the current phase.
func (m Model) phaseLabel() string {
	if m.phase == "" {
		return allPhasesLabel
	}
	if name := almanac.PhaseName(m.phase); name != "" {
		return m.phase + " " + name
	}
	return m.phase
}
