package state

import (
	"fmt"
	"sync"

	"github.com/pawboard/pawboard/internal/daycare"
)

// Overlay holds the session's unsaved status overrides, keyed by chip
// number. It is created empty at startup, owned by the app wiring, and
// passed to the UI by reference; nothing reaches it ambiently. Entries are
// never expired and die with the process.
type Overlay struct {
	mu       sync.RWMutex
	entries  map[string]daycare.Status
	updating map[string]bool
	lastErr  error
}

// NewOverlay returns an empty overlay store.
func NewOverlay() *Overlay {
	return &Overlay{
		entries:  make(map[string]daycare.Status),
		updating: make(map[string]bool),
	}
}

// Set inserts or overwrites the override for chipNumber. It returns false
// and records a validation error when the chip number is empty or the
// status is not a storable attendance value; the filter wildcard must
// never enter the map. On success the chip is also marked as updating
// until ClearUpdating is called with the submit result.
func (o *Overlay) Set(chipNumber string, status daycare.Status) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if chipNumber == "" {
		o.lastErr = &daycare.ValidationError{Reason: "chip number is empty"}
		return false
	}
	if status != daycare.StatusPresent && status != daycare.StatusAbsent {
		o.lastErr = &daycare.ValidationError{Reason: fmt.Sprintf("status %q is not storable", status)}
		return false
	}

	o.entries[chipNumber] = status
	o.updating[chipNumber] = true
	return true
}

// Get returns the override for chipNumber, if one exists.
func (o *Overlay) Get(chipNumber string) (daycare.Status, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	status, ok := o.entries[chipNumber]
	return status, ok
}

// Effective derives the status a view should display for dog: the session
// override when one exists, otherwise the remote snapshot's value. Every
// view and predicate goes through this one derivation.
func (o *Overlay) Effective(dog daycare.Dog) daycare.Status {
	if status, ok := o.Get(dog.ChipNumber); ok {
		return status
	}
	return dog.BaseStatus()
}

// Updating reports whether a status change for chipNumber is still in
// flight. The toggle control stays disabled while true.
func (o *Overlay) Updating(chipNumber string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.updating[chipNumber]
}

// ClearUpdating records the outcome of the submit round trip for
// chipNumber and re-enables its toggle.
func (o *Overlay) ClearUpdating(chipNumber string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.updating, chipNumber)
	if err != nil {
		o.lastErr = err
	}
}

// LastError returns the most recent validation or submit error. The store
// never clears it on its own; consumers call ClearError when they mount.
func (o *Overlay) LastError() error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.lastErr
}

// ClearError drops the recorded error.
func (o *Overlay) ClearError() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.lastErr = nil
}

// Len returns the number of session overrides.
func (o *Overlay) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.entries)
}
