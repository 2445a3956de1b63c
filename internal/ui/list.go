package ui

import (
	"fmt"
	"strings"

	"github.com/pawboard/pawboard/internal/daycare"
)

// renderList renders the search bar and the filtered roster.
func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	visible := m.visibleDogs()
	if len(visible) == 0 {
		b.WriteString(m.styles.MutedText.Render("  " + m.emptyListText()))
		return b.String()
	}

	nameWidth := maxNameWidth(visible)
	for i, dog := range visible {
		b.WriteString(m.renderRow(dog, nameWidth, i == m.selectedRow))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRow formats one dog line: cursor, status badge, name, breed, chip,
// owner.
func (m Model) renderRow(dog daycare.Dog, nameWidth int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.AccentText.Render("▸ ")
	}

	badge := m.statusBadge(dog)
	name := padRight(truncate(dog.DisplayName(), 24), min(nameWidth, 24))
	meta := fmt.Sprintf("%s · chip %s · %s",
		truncate(orDash(dog.Breed), 18), orDash(dog.ChipNumber), truncate(dog.OwnerName(), 22))

	var line string
	if selected {
		line = m.styles.Selected.Render(name) + "  " + m.styles.MutedText.Render(meta)
	} else {
		line = m.styles.Text.Render(name) + "  " + m.styles.FaintText.Render(meta)
	}
	return cursor + badge + " " + line
}

// statusBadge renders the effective status, switching to a saving marker
// while a toggle round trip is in flight.
func (m Model) statusBadge(dog daycare.Dog) string {
	if m.overlay != nil && m.overlay.Updating(dog.ChipNumber) {
		return m.styles.WarningText.Render("SAVING…")
	}
	status := m.effectiveStatus(dog)
	return m.styles.StatusBadge(status).Render(strings.ToUpper(string(status)))
}

// effectiveStatus is the one derivation shared by list and detail views.
func (m Model) effectiveStatus(dog daycare.Dog) daycare.Status {
	if m.overlay != nil {
		return m.overlay.Effective(dog)
	}
	return dog.BaseStatus()
}

func (m Model) emptyListText() string {
	if len(m.snapshot.Dogs) == 0 {
		return "no dogs in the roster yet"
	}
	if m.committedTerm != "" {
		return fmt.Sprintf("no dogs match %q", m.committedTerm)
	}
	return "no dogs match the current filter"
}

func maxNameWidth(dogs []daycare.Dog) int {
	width := 0
	for _, dog := range dogs {
		if n := len([]rune(dog.DisplayName())); n > width {
			width = n
		}
	}
	return width
}
