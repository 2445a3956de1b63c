package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawboard/pawboard/internal/daycare"
	"github.com/pawboard/pawboard/internal/state"
)

type stubFetcher struct {
	dogs []daycare.Dog
	err  error
}

func (s stubFetcher) FetchRoster(context.Context) ([]daycare.Dog, error) {
	return s.dogs, s.err
}

func testRoster() []daycare.Dog {
	return []daycare.Dog{
		{ChipNumber: "A1", Name: "Rex", Present: true},
		{ChipNumber: "B2", Name: "Fido", Present: false},
		{ChipNumber: "C3", Name: "Bella", Present: true},
	}
}

func newTestModel(t *testing.T, fetcher daycare.RosterFetcher) Model {
	t.Helper()
	m := New(Options{
		Fetcher:   fetcher,
		Submitter: &daycare.MockSubmitter{Delay: time.Millisecond},
		Roster:    &state.RosterStore{},
		Overlay:   state.NewOverlay(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Debounce:  time.Millisecond,
	})
	m.ready = true
	return m
}

// loadRoster runs the fetch command synchronously and feeds the resulting
// message back through Update, the way the runtime would.
func loadRoster(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.fetchRosterCmd()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_RosterLoad(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	if m.snapshot.Phase != state.PhaseLoaded {
		t.Fatalf("Phase = %v, want loaded", m.snapshot.Phase)
	}
	if got := len(m.visibleDogs()); got != 3 {
		t.Fatalf("visible dogs = %d, want 3", got)
	}
}

func TestModel_RosterLoadFailureKeepsPrevious(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	m.fetcher = stubFetcher{err: &daycare.StatusError{Code: 503}}
	m = loadRoster(t, m)

	if m.snapshot.Phase != state.PhaseErrored {
		t.Fatalf("Phase = %v, want errored", m.snapshot.Phase)
	}
	if got := len(m.snapshot.Dogs); got != 3 {
		t.Fatalf("roster after failed retry = %d dogs, want the previous 3", got)
	}
}

func TestModel_SearchCommitsOnSettle(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	// Two edits in quick succession. The tick for the first edit arrives
	// stale and must not commit the intermediate value.
	m.searchInput.SetValue("f")
	staleCmd := m.debounce.bump()
	m.searchInput.SetValue("fi")
	freshCmd := m.debounce.bump()

	updated, _ := m.Update(staleCmd())
	m = updated.(Model)
	if m.committedTerm != "" {
		t.Fatalf("committedTerm = %q after stale tick, want empty", m.committedTerm)
	}

	updated, _ = m.Update(freshCmd())
	m = updated.(Model)
	if m.committedTerm != "fi" {
		t.Fatalf("committedTerm = %q, want %q", m.committedTerm, "fi")
	}
	if got := len(m.visibleDogs()); got != 1 {
		t.Fatalf("visible dogs = %d, want 1 (Fido)", got)
	}
}

func TestModel_FilterCyclesImmediately(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	updated, _ := m.Update(keyPress('f'))
	m = updated.(Model)
	if m.filterMode != daycare.StatusPresent {
		t.Fatalf("filterMode = %q, want present", m.filterMode)
	}
	if got := len(m.visibleDogs()); got != 2 {
		t.Fatalf("visible dogs = %d, want 2 present", got)
	}

	updated, _ = m.Update(keyPress('f'))
	m = updated.(Model)
	if m.filterMode != daycare.StatusAbsent {
		t.Fatalf("filterMode = %q, want absent", m.filterMode)
	}

	updated, _ = m.Update(keyPress('f'))
	m = updated.(Model)
	if m.filterMode != daycare.StatusAll {
		t.Fatalf("filterMode = %q, want all", m.filterMode)
	}
}

func TestModel_ToggleFlow(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	// Rex is selected (row 0). Toggling flips present → absent, marks the
	// chip as updating, and returns a submit command.
	updated, cmd := m.Update(keyPress('t'))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("toggle returned no submit command")
	}
	if got, ok := m.overlay.Get("A1"); !ok || got != daycare.StatusAbsent {
		t.Fatalf("overlay.Get(A1) = %q/%v, want absent/true", got, ok)
	}
	if !m.overlay.Updating("A1") {
		t.Fatal("Updating(A1) = false during submit, want true")
	}

	// Repeat presses are ignored while the submit is in flight.
	if _, dup := m.Update(keyPress('t')); dup != nil {
		t.Fatal("toggle during in-flight submit returned a command, want nil")
	}

	saved, ok := cmd().(statusSavedMsg)
	if !ok {
		t.Fatal("submit command did not produce a statusSavedMsg")
	}
	if saved.err != nil {
		t.Fatalf("submit err = %v, want nil", saved.err)
	}

	updated, _ = m.Update(saved)
	m = updated.(Model)
	if m.overlay.Updating("A1") {
		t.Fatal("Updating(A1) = true after save, want false")
	}
	if got := m.overlay.Effective(testRoster()[0]); got != daycare.StatusAbsent {
		t.Fatalf("Effective(A1) = %q, want absent after toggle", got)
	}
}

func TestModel_FailedSubmitSurfacesError(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	updated, _ := m.Update(keyPress('t'))
	m = updated.(Model)

	updated, _ = m.Update(statusSavedMsg{chipNumber: "A1", err: errors.New("write endpoint unavailable")})
	m = updated.(Model)

	if m.overlay.Updating("A1") {
		t.Fatal("Updating(A1) = true after failed save, want false")
	}
	if m.overlay.LastError() == nil {
		t.Fatal("LastError = nil, want the submit failure recorded")
	}
	// The optimistic override stays until the next reload.
	if got, ok := m.overlay.Get("A1"); !ok || got != daycare.StatusAbsent {
		t.Fatalf("overlay.Get(A1) = %q/%v, want absent/true", got, ok)
	}
}

func TestModel_DetailNavigation(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.currentView != ViewDetail || m.detailChip != "A1" {
		t.Fatalf("after open: view=%v chip=%q, want detail/A1", m.currentView, m.detailChip)
	}

	updated, _ = m.Update(keyPress(']'))
	m = updated.(Model)
	if m.detailChip != "B2" {
		t.Fatalf("after next: chip = %q, want B2", m.detailChip)
	}

	updated, _ = m.Update(keyPress(']'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress(']'))
	m = updated.(Model)
	if m.detailChip != "C3" {
		t.Fatalf("next past the end moved to %q, want to stay on C3", m.detailChip)
	}

	updated, _ = m.Update(keyPress('['))
	m = updated.(Model)
	if m.detailChip != "B2" {
		t.Fatalf("after prev: chip = %q, want B2", m.detailChip)
	}

	// Back lands the list cursor on the dog that was open.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.currentView != ViewList {
		t.Fatalf("view = %v, want list", m.currentView)
	}
	if m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want 1 (B2)", m.selectedRow)
	}
}

func TestModel_SelectionClampsWhenFilterShrinks(t *testing.T) {
	m := newTestModel(t, stubFetcher{dogs: testRoster()})
	m = loadRoster(t, m)

	m.selectedRow = 2
	updated, _ := m.Update(keyPress('f')) // present only: 2 dogs
	m = updated.(Model)
	if m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want clamped to 1", m.selectedRow)
	}
}
