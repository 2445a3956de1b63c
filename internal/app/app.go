// Package app wires configuration, the roster client, session state, and
// the UI into the running application.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pawboard/pawboard/internal/config"
	"github.com/pawboard/pawboard/internal/daycare"
	"github.com/pawboard/pawboard/internal/prefs"
	"github.com/pawboard/pawboard/internal/state"
	"github.com/pawboard/pawboard/internal/ui"
)

// Options configure the Pawboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pawboard/prefs.toml
	RosterURL  string // overrides the configured roster endpoint
	Debounce   time.Duration
}

// Run boots the Pawboard TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RosterURL != "" {
		cfg.RosterURL = opts.RosterURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := daycare.NewClient(cfg.RosterURL, cfg.FetchTimeout)
	if err != nil {
		return fmt.Errorf("init roster client: %w", err)
	}

	// Session state: the roster snapshot and the overlay of unsaved
	// status changes. Both are created here and die with the process.
	rosterStore := &state.RosterStore{}
	overlay := state.NewOverlay()

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Submitter: &daycare.MockSubmitter{},
		Roster:    rosterStore,
		Overlay:   overlay,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Debounce:  opts.Debounce,
	}
	return ui.Run(uiOpts)
}
