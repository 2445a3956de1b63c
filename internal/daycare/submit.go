package daycare

import (
	"context"
	"time"
)

// StatusSubmitter records a status change upstream. The daycare service has
// no write API today, so the live implementation is MockSubmitter; the
// interface keeps the toggle path shaped like a real round trip so a future
// endpoint slots in without touching the UI.
type StatusSubmitter interface {
	SubmitStatus(ctx context.Context, chipNumber string, status Status) error
}

var _ StatusSubmitter = (*MockSubmitter)(nil)

// MockSubmitter accepts every well-formed status change after a short
// artificial delay, standing in for the missing write endpoint.
type MockSubmitter struct {
	Delay time.Duration
}

const defaultSubmitDelay = 400 * time.Millisecond

// SubmitStatus resolves after the configured delay, or earlier when the
// context is cancelled.
func (m *MockSubmitter) SubmitStatus(ctx context.Context, chipNumber string, status Status) error {
	if chipNumber == "" {
		return &ValidationError{Reason: "chip number is empty"}
	}
	if status != StatusPresent && status != StatusAbsent {
		return &ValidationError{Reason: "status must be present or absent"}
	}

	delay := m.Delay
	if delay <= 0 {
		delay = defaultSubmitDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
