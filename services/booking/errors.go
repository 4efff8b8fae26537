package booking

import (
	"errors"
	"fmt"

	"servana/models"
)

// ErrBookingNotFound marks lookups where no booking matched the given id.
var ErrBookingNotFound = errors.New("booking not found")

// TransitionError reports an illegal status change request.
type TransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *TransitionError) Error() string {
	if IsTerminal(e.From) {
		return fmt.Sprintf("booking is already %s; no further status changes are allowed", e.From)
	}
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// InvalidStatusError reports a status value outside the known set.
type InvalidStatusError struct {
	Status models.BookingStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("unknown booking status %q", e.Status)
}
