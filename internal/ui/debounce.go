package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchSettledMsg fires when a debounce timer elapses. Only the message
// carrying the latest sequence number commits the search term.
type searchSettledMsg struct {
	seq int
}

const defaultDebounceDelay = 300 * time.Millisecond

// debouncer implements a trailing-edge debounce on top of tea.Tick. Every
// input change bumps the sequence and schedules a tick; ticks from
// superseded sequences are discarded in settled, so a burst of keystrokes
// commits exactly once, with the final value.
type debouncer struct {
	seq   int
	delay time.Duration
}

func newDebouncer(delay time.Duration) debouncer {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return debouncer{delay: delay}
}

// bump invalidates any pending timer and schedules a fresh one.
func (d *debouncer) bump() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
}

// settled reports whether msg belongs to the most recent bump.
func (d *debouncer) settled(msg searchSettledMsg) bool {
	return msg.seq == d.seq
}
