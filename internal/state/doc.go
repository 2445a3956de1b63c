// Package state provides the mutable session state shared between the UI
// event loop and the commands it spawns.
//
// # Overview
//
// Two stores live here. RosterStore tracks the remote roster snapshot and
// its load lifecycle; Overlay tracks the session's unsaved attendance
// overrides. Both are mutex-protected because Bubble Tea commands run on
// their own goroutines even though the Update loop itself is single
// threaded.
//
// # RosterStore
//
// Fetches follow a Begin/Complete protocol. Begin hands out a generation
// token and flips the phase to loading; Complete applies the result only
// when its token is still current. Overlapping manual retries therefore
// resolve to the last started fetch, never to whichever response happened
// to arrive last. A failed fetch keeps the previous roster so the list
// stays rendered behind the error banner.
//
// # Overlay
//
// The overlay is a plain map from chip number to attendance status. It is
// created empty at session start, owned by the app wiring, and handed to
// the UI by reference — no package-level state. An entry appears the first
// time a dog's status is toggled and is overwritten on later toggles;
// nothing expires it and nothing persists it. Effective() is the single
// derivation of displayed status (override wins, else the remote boolean)
// used by the list, the detail view, and the filter predicate alike.
//
// Set validates its input and records a ValidationError instead of
// mutating; the filter wildcard "all" is rejected so it can never appear
// as a stored value. Errors stick until a consumer calls ClearError.
package state
