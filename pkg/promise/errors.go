package promise

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNilRejection replaces a nil error passed to a reject callback so a
	// failure can never be mistaken for a success.
	ErrNilRejection = errors.New("promise: rejected with nil error")
)

// TimeoutError is the default failure value of Timeout when the caller does
// not supply one. It is constructed once at call time.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("promise: timeout after %d milliseconds", e.After.Milliseconds())
}

// SettleError is the rejection value of Settle for sequence-shaped inputs.
type SettleError struct {
	// Errors holds one entry per failed item. Condensed by default; with
	// WithSparse the slice keeps the input length, with nil gaps at the
	// positions that did not fail.
	Errors []error
}

func (e *SettleError) Error() string {
	return fmt.Sprintf("promise: %d item(s) failed to settle", len(e.Unwrap()))
}

// Unwrap exposes the individual failures to errors.Is and errors.As,
// skipping sparse gaps.
func (e *SettleError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// SettleMapError is the rejection value of SettleMap: one entry per failed
// item, keyed like the input. Successful items do not appear.
type SettleMapError struct {
	Errors map[string]error
}

func (e *SettleMapError) Error() string {
	return fmt.Sprintf("promise: %d item(s) failed to settle", len(e.Errors))
}

// Unwrap exposes the individual failures to errors.Is and errors.As. The
// order follows map enumeration and is not deterministic.
func (e *SettleMapError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		errs = append(errs, err)
	}
	return errs
}
