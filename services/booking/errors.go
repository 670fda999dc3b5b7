package booking

import (
	"errors"
	"fmt"
)

// ErrNotCompleted reports a silent persistence failure: the store raised no
// fault but confirmed no new identifier either. It maps to the generic
// "not completed" rejection rather than exposing the underlying cause.
var ErrNotCompleted = errors.New("appointment could not be completed")

// ConflictError rejects a booking whose (appointmentDate, email,
// treatmentName) triple is already claimed. The message names the
// conflicting date.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have an appointment on %s", e.Date)
}

// IsConflict reports whether err is a booking conflict rejection.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
