package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("PAWBOARD") + m.styles.MutedText.Render("  key bindings"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{"List", []struct{ key, desc string }{
			{"j/k, ↓/↑", "Move selection"},
			{"g / G", "Top / bottom"},
			{"/", "Search by name (debounced)"},
			{"f", "Cycle status filter (all/present/absent)"},
			{"enter", "Open detail"},
			{"t, Space", "Toggle present/absent"},
			{"esc", "Clear search"},
		}},
		{"Detail", []struct{ key, desc string }{
			{"[ / ]", "Previous / next dog"},
			{"t, Space", "Toggle present/absent"},
			{"↓/↑", "Scroll"},
			{"esc", "Back to list"},
		}},
		{"General", []struct{ key, desc string }{
			{"r", "Reload roster"},
			{"T", "Cycle theme"},
			{"?", "This help"},
			{"q, Ctrl+C", "Quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString(m.styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.InfoText.Render(padRight(item.key, 12)),
				m.styles.Text.Render(item.desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.FaintText.Render("press any key to close"))

	panel := m.styles.Panel.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
