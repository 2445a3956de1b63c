package ui

import (
	"fmt"
	"strings"

	"github.com/pawboard/pawboard/internal/daycare"
	"github.com/pawboard/pawboard/internal/roster"
)

// renderDetail renders the detail view for the currently opened dog, or a
// not-found error view when the chip vanished from the roster.
func (m Model) renderDetail() string {
	dog, ok := roster.Find(m.snapshot.Dogs, m.detailChip)
	if !ok {
		return m.renderNotFound()
	}

	var b strings.Builder
	b.WriteString(m.renderDetailBar(dog))
	b.WriteString("\n")
	b.WriteString(m.styles.PanelFocus.Render(m.detailViewport.View()))
	return b.String()
}

// renderDetailBar shows the dog's name, its effective status, and the
// prev/next affordances for the current roster order.
func (m Model) renderDetailBar(dog daycare.Dog) string {
	adj := roster.ResolveAdjacent(m.snapshot.Dogs, m.detailChip)

	prev := m.styles.FaintText.Render("◂ prev")
	if adj.Prev != "" {
		prev = m.styles.AccentText.Render("◂ prev")
	}
	next := m.styles.FaintText.Render("next ▸")
	if adj.Next != "" {
		next = m.styles.AccentText.Render("next ▸")
	}

	title := m.styles.Text.Bold(true).Render(dog.DisplayName())
	return fmt.Sprintf(" %s  %s  %s  %s", prev, title, m.statusBadge(dog), next)
}

// renderNotFound is terminal for this chip; the only affordance is the
// path back to the list.
func (m Model) renderNotFound() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.DangerText.Render(fmt.Sprintf("  no dog with chip %s in the current roster", m.detailChip)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("  it may have been removed upstream — press esc to return to the list"))
	return b.String()
}

// updateDetailViewport rebuilds the viewport content for the open dog.
// Called whenever the roster, overlay, theme, or open chip changes.
func (m *Model) updateDetailViewport() {
	if !m.ready || m.detailChip == "" {
		return
	}
	dog, ok := roster.Find(m.snapshot.Dogs, m.detailChip)
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(dog))
}

// detailContent lays out the record fields, falling back where the
// payload left gaps.
func (m Model) detailContent(dog daycare.Dog) string {
	label := func(s string) string { return m.styles.MutedText.Render(padRight(s, 10)) }
	value := func(s string) string { return m.styles.Text.Render(s) }

	age := "—"
	if dog.Age > 0 {
		age = fmt.Sprintf("%d", dog.Age)
	}

	status := m.effectiveStatus(dog)
	statusLine := m.styles.StatusBadge(status).Render(strings.ToUpper(string(status)))
	if m.overlay != nil {
		if m.overlay.Updating(dog.ChipNumber) {
			statusLine += "  " + m.styles.WarningText.Render("saving…")
		} else if _, overridden := m.overlay.Get(dog.ChipNumber); overridden {
			statusLine += "  " + m.styles.FaintText.Render("(changed this session)")
		}
	}

	lines := []string{
		label("Chip") + value(orDash(dog.ChipNumber)),
		label("Name") + value(dog.DisplayName()),
		label("Breed") + value(orDash(dog.Breed)),
		label("Sex") + value(orDash(dog.Sex)),
		label("Age") + value(age),
		label("Status") + statusLine,
		label("Photo") + m.styles.InfoText.Render(dog.ImageURL()),
		"",
		label("Owner") + value(dog.OwnerName()),
		label("Phone") + value(orDash(dog.Owner.Phone)),
	}
	return strings.Join(lines, "\n")
}
