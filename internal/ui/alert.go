package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertModal reports a failed forecast load. It swallows every key until
// dismissed.
type alertModal struct {
	message string
}

func newAlertModal(message string) alertModal {
	return alertModal{message: strings.TrimSpace(message)}
}

func (a alertModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Confirm), key.Matches(keyMsg, keys.Escape):
		return a, nil, true
	case keyMsg.Type == tea.KeyCtrlC:
		return a, tea.Quit, true
	}
	return a, nil, false
}

func (a alertModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	modalWidth := min(max(width-8, 20), 56)

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Forecast unavailable"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(modalWidth - 6).Render(a.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/esc dismiss"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
