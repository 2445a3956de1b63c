package daycare

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockSubmitter_AcceptsValidChange(t *testing.T) {
	m := &MockSubmitter{Delay: time.Millisecond}
	if err := m.SubmitStatus(context.Background(), "A1", StatusAbsent); err != nil {
		t.Fatalf("SubmitStatus returned error: %v", err)
	}
}

func TestMockSubmitter_RejectsInvalidInput(t *testing.T) {
	m := &MockSubmitter{Delay: time.Millisecond}

	err := m.SubmitStatus(context.Background(), "", StatusPresent)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("SubmitStatus with empty chip = %v, want *ValidationError", err)
	}

	err = m.SubmitStatus(context.Background(), "A1", StatusAll)
	if !errors.As(err, &validationErr) {
		t.Fatalf("SubmitStatus with wildcard status = %v, want *ValidationError", err)
	}
}

func TestMockSubmitter_HonorsCancellation(t *testing.T) {
	m := &MockSubmitter{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SubmitStatus(ctx, "A1", StatusPresent)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("SubmitStatus error = %v, want context.Canceled", err)
	}
}
