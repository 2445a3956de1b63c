// Package ui provides the Bubble Tea terminal interface for Pawboard.
//
// # Architecture Overview
//
// The UI is a single Elm-style event loop: all state lives in Model, every
// mutation happens in Update, and anything slow (the roster fetch, the
// status submit, the debounce timer) runs as a tea.Cmd that reports back
// with a message. Nothing blocks the loop.
//
// # Views
//
//   - List view: debounced name search, immediate status filter, one row
//     per visible dog with its effective status badge
//   - Detail view: full record with fallbacks, prev/next paging in roster
//     order, status toggle
//   - Help overlay: full key binding reference
//
// # Status flow
//
// A toggle flips the dog's effective status, writes the override into the
// overlay store synchronously, and submits the change as a command. While
// the submit is in flight the dog is marked updating and further toggles
// on it are ignored; the statusSavedMsg clears the mark and surfaces any
// submit error in the footer.
//
// # Search debounce
//
// Keystrokes update the text input immediately but the filter only sees
// the term after it has been stable for the debounce window. The debouncer
// tags each pending tea.Tick with a sequence number; a tick whose number
// has been superseded is dropped, so only the final value of a burst ever
// commits. Clearing the search with esc commits immediately.
package ui
