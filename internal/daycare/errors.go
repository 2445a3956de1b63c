package daycare

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// StatusError reports a non-2xx response from the roster endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("roster endpoint returned status %d", e.Code)
}

// FormatError reports a response body that is not a JSON array of dogs.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("roster payload is not a dog list: %s", e.Reason)
}

// ValidationError reports invalid input to a status change.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid status change: %s", e.Reason)
}

// IsTimeout reports whether err was caused by the request deadline rather
// than a generic transport failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
