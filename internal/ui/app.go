package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawboard/pawboard/internal/daycare"
	"github.com/pawboard/pawboard/internal/prefs"
	"github.com/pawboard/pawboard/internal/roster"
	"github.com/pawboard/pawboard/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   daycare.RosterFetcher
	Submitter daycare.StatusSubmitter
	Roster    *state.RosterStore
	Overlay   *state.Overlay
	ThemeName string
	PrefsPath string
	Debounce  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   daycare.RosterFetcher
	submitter daycare.StatusSubmitter
	store     *state.RosterStore
	overlay   *state.Overlay
	prefsPath string

	// UI state
	theme  Theme
	styles Styles
	keys   keyMap
	width  int
	height int
	ready  bool

	currentView View
	showHelp    bool

	// Data state
	snapshot state.Snapshot

	// List state
	searchInput   textinput.Model
	searching     bool
	committedTerm string
	debounce      debouncer
	filterMode    daycare.Status
	selectedRow   int

	// Detail state
	detailChip     string
	detailViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "name"
	input.CharLimit = 64

	return Model{
		ctx:         ctx,
		fetcher:     opts.Fetcher,
		submitter:   opts.Submitter,
		store:       opts.Roster,
		overlay:     opts.Overlay,
		prefsPath:   prefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        DefaultKeyMap(),
		currentView: ViewList,
		searchInput: input,
		debounce:    newDebouncer(opts.Debounce),
		filterMode:  daycare.StatusAll,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.overlay != nil {
		m.overlay.ClearError()
	}
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchRosterCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width-4, max(msg.Height-6, 3))
		} else {
			m.detailViewport.Width = msg.Width - 4
			m.detailViewport.Height = max(msg.Height-6, 3)
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case rosterMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampSelection()
		m.updateDetailViewport()
		return m, nil

	case searchSettledMsg:
		if m.debounce.settled(msg) {
			m.committedTerm = m.searchInput.Value()
			m.clampSelection()
		}
		return m, nil

	case statusSavedMsg:
		if m.overlay != nil {
			m.overlay.ClearUpdating(msg.chipNumber, msg.err)
		}
		m.updateDetailViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.currentView {
	case ViewDetail:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		return m, m.fetchRosterCmd()

	case key.Matches(msg, m.keys.CycleFilter):
		// Status filtering applies immediately; only the search term is
		// debounced.
		m.cycleFilter()
		m.clampSelection()
		return m, nil
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleSearchKey routes input to the search field while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.ClearSearch):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		// Clearing is an explicit action, not a keystroke burst; commit
		// it without waiting out the debounce window.
		m.committedTerm = ""
		m.clampSelection()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		return m, tea.Batch(cmd, m.debounce.bump())
	}
	return m, cmd
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.overlay != nil && m.overlay.LastError() != nil {
			m.overlay.ClearError()
			return m, nil
		}
		if m.searchInput.Value() != "" || m.committedTerm != "" {
			m.searchInput.SetValue("")
			m.committedTerm = ""
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if dog, ok := m.selectedDog(); ok {
			m.currentView = ViewDetail
			m.detailChip = dog.ChipNumber
			if m.overlay != nil {
				// Stale errors do not carry across mounts.
				m.overlay.ClearError()
			}
			m.updateDetailViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if dog, ok := m.selectedDog(); ok {
			return m, m.toggleStatus(dog.ChipNumber)
		}
		return m, nil
	}

	visible := m.visibleDogs()
	count := len(visible)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}

	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewList
		m.syncSelectionToDetail()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleStatus(m.detailChip)

	case key.Matches(msg, m.keys.Prev):
		// Adjacency is resolved against the current snapshot on every
		// press, never cached across fetches.
		if adj := roster.ResolveAdjacent(m.snapshot.Dogs, m.detailChip); adj.Prev != "" {
			m.detailChip = adj.Prev
			m.updateDetailViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if adj := roster.ResolveAdjacent(m.snapshot.Dogs, m.detailChip); adj.Next != "" {
			m.detailChip = adj.Next
			m.updateDetailViewport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// cycleFilter cycles all → present → absent → all.
func (m *Model) cycleFilter() {
	switch m.filterMode {
	case daycare.StatusAll:
		m.filterMode = daycare.StatusPresent
	case daycare.StatusPresent:
		m.filterMode = daycare.StatusAbsent
	default:
		m.filterMode = daycare.StatusAll
	}
}

// visibleDogs applies the settled search term and the status filter to the
// current roster, effective statuses included.
func (m Model) visibleDogs() []daycare.Dog {
	var lookup roster.StatusLookup
	if m.overlay != nil {
		lookup = m.overlay.Effective
	}
	return roster.Visible(m.snapshot.Dogs, m.committedTerm, m.filterMode, lookup)
}

// selectedDog returns the dog under the cursor in the filtered list.
func (m Model) selectedDog() (daycare.Dog, bool) {
	visible := m.visibleDogs()
	if m.selectedRow < 0 || m.selectedRow >= len(visible) {
		return daycare.Dog{}, false
	}
	return visible[m.selectedRow], true
}

// clampSelection keeps the cursor inside the filtered list after the
// roster, search term, or filter changed under it.
func (m *Model) clampSelection() {
	count := len(m.visibleDogs())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// syncSelectionToDetail moves the list cursor to the dog that was open in
// the detail view, when it is still visible.
func (m *Model) syncSelectionToDetail() {
	for i, dog := range m.visibleDogs() {
		if dog.ChipNumber == m.detailChip {
			m.selectedRow = i
			return
		}
	}
	m.clampSelection()
}

// toggleStatus flips the effective status of the given dog and submits the
// change. Repeat presses are ignored while a submit is in flight.
func (m *Model) toggleStatus(chipNumber string) tea.Cmd {
	if m.overlay == nil || chipNumber == "" {
		return nil
	}
	if m.overlay.Updating(chipNumber) {
		return nil
	}
	dog, ok := roster.Find(m.snapshot.Dogs, chipNumber)
	if !ok {
		return nil
	}

	next := m.overlay.Effective(dog).Toggled()
	if !m.overlay.Set(chipNumber, next) {
		return nil
	}
	m.updateDetailViewport()
	return m.submitStatusCmd(chipNumber, next)
}

// Messages

type rosterMsg state.Snapshot

type statusSavedMsg struct {
	chipNumber string
	err        error
}

// Commands

// fetchRosterCmd loads the roster off the event loop. The store's
// generation token makes overlapping retries resolve last-started-wins.
func (m Model) fetchRosterCmd() tea.Cmd {
	ctx, store, fetcher := m.ctx, m.store, m.fetcher
	return func() tea.Msg {
		gen := store.Begin()
		dogs, err := fetcher.FetchRoster(ctx)
		store.Complete(gen, dogs, err)
		return rosterMsg(store.Snapshot())
	}
}

func (m Model) submitStatusCmd(chipNumber string, status daycare.Status) tea.Cmd {
	ctx, submitter := m.ctx, m.submitter
	return func() tea.Msg {
		err := submitter.SubmitStatus(ctx, chipNumber, status)
		return statusSavedMsg{chipNumber: chipNumber, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
