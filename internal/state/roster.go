package state

import (
	"sync"
	"time"

	"github.com/pawboard/pawboard/internal/daycare"
)

// Phase is the load indicator consumed by the rendering layer.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseErrored
)

// Snapshot is the latest roster state available to the UI. Dogs keep the
// endpoint's order; it defines prev/next adjacency.
type Snapshot struct {
	Dogs      []daycare.Dog
	Phase     Phase
	LastError error
	FetchedAt time.Time
}

// RosterStore coordinates roster fetch lifecycles. Each fetch starts with
// Begin, which hands out a generation token; Complete ignores tokens that
// have been superseded, so when retries overlap the last started fetch
// wins regardless of which response lands first.
type RosterStore struct {
	mu       sync.RWMutex
	snapshot Snapshot
	gen      uint64
}

// Begin marks a fetch as in flight and returns its generation token.
func (s *RosterStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.snapshot.Phase = PhaseLoading
	return s.gen
}

// Complete records the outcome of the fetch identified by gen. It returns
// false when the fetch was superseded by a newer Begin, in which case the
// snapshot is untouched. On error the previous roster is kept so the list
// does not blank out behind the error banner.
func (s *RosterStore) Complete(gen uint64, dogs []daycare.Dog, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	if err != nil {
		s.snapshot.Phase = PhaseErrored
		s.snapshot.LastError = err
		s.snapshot.FetchedAt = time.Now()
		return true
	}

	s.snapshot.Dogs = cloneDogs(dogs)
	s.snapshot.Phase = PhaseLoaded
	s.snapshot.LastError = nil
	s.snapshot.FetchedAt = time.Now()
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *RosterStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Dogs = cloneDogs(s.snapshot.Dogs)
	return snap
}

func cloneDogs(dogs []daycare.Dog) []daycare.Dog {
	if len(dogs) == 0 {
		return nil
	}
	dup := make([]daycare.Dog, len(dogs))
	copy(dup, dogs)
	return dup
}
