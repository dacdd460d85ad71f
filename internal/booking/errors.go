// Package booking implements the reservation engine: holiday blackout
// checks, room auto-selection, booking conflict detection, the booking
// status state machine, and the availability calculators.  It depends on
// store interfaces only, never on a concrete database, and reports every
// failure as a kinded Error so the transport layer can map it to an HTTP
// status without string matching.
package booking

import (
	"errors"
	"fmt"
)

// Kind sentinels.  Use errors.Is(err, booking.ErrNotFound) etc. to test
// the failure class of any error returned by this package.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
)

// Error carries a failure kind and an operator-readable message.  Guard
// failures abort an operation before any write happens, so callers always
// observe an all-or-nothing outcome.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is makes errors.Is(err, ErrConflict) match the kind sentinel.
func (e *Error) Is(target error) bool { return target == e.Kind }

func notFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func badRequestf(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func forbiddenf(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}
