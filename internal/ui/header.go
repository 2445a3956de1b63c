package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pawboard/pawboard/internal/daycare"
	"github.com/pawboard/pawboard/internal/state"
)

// renderHeader renders the top line: logo, roster load state, counts.
func (m Model) renderHeader() string {
	var parts []string
	parts = append(parts, m.styles.Logo.Render("PAWBOARD"))

	switch m.snapshot.Phase {
	case state.PhaseLoading:
		parts = append(parts, m.styles.InfoText.Render("loading roster…"))
	case state.PhaseErrored:
		parts = append(parts, m.styles.DangerText.Render(loadErrorText(m.snapshot.LastError)))
		parts = append(parts, m.styles.MutedText.Render("press r to retry"))
	default:
		visible := len(m.visibleDogs())
		total := len(m.snapshot.Dogs)
		count := fmt.Sprintf("%d dogs", total)
		if visible != total {
			count = fmt.Sprintf("%d/%d dogs", visible, total)
		}
		parts = append(parts, m.styles.Text.Render(count))
		if !m.snapshot.FetchedAt.IsZero() {
			parts = append(parts, m.styles.FaintText.Render("fetched "+humanizeSince(m.snapshot.FetchedAt)))
		}
	}

	if m.filterMode != daycare.StatusAll {
		parts = append(parts, m.styles.AccentText.Render("filter: "+m.filterMode.Label()))
	}
	if m.overlay != nil && m.overlay.Len() > 0 {
		parts = append(parts, m.styles.WarningText.Render(fmt.Sprintf("%d unsaved", m.overlay.Len())))
	}

	sep := m.styles.FaintText.Render(" • ")
	return m.styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, sep))
}

// renderFooter renders key hints plus any pending overlay error.
func (m Model) renderFooter() string {
	if m.overlay != nil {
		if err := m.overlay.LastError(); err != nil {
			return m.styles.Footer.Width(max(m.width, 0)).Render(
				m.styles.DangerText.Render("status change failed: "+err.Error()) +
					m.styles.MutedText.Render("  (esc to dismiss)"))
		}
	}

	var hints []string
	switch m.currentView {
	case ViewDetail:
		hints = []string{"t toggle", "[/] prev/next", "esc back", "? help"}
	default:
		hints = []string{"/ search", "f filter", "enter detail", "t toggle", "r reload", "? help", "q quit"}
	}
	return m.styles.Footer.Width(max(m.width, 0)).Render(strings.Join(hints, "  "))
}

// loadErrorText names the failure kind the way the roster client reports
// it: HTTP status, payload shape, timeout, or plain transport trouble.
func loadErrorText(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *daycare.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("roster fetch failed: HTTP %d", statusErr.Code)
	}
	var formatErr *daycare.FormatError
	if errors.As(err, &formatErr) {
		return "roster fetch failed: unexpected payload shape"
	}
	if daycare.IsTimeout(err) {
		return "roster fetch timed out"
	}
	return "roster fetch failed: " + err.Error()
}
