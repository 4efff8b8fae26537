package booking

import "servana/models"

// transitions is the fixed table of legal status changes. Completed,
// cancelled and declined are terminal: they have no outgoing edges.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingAccepted, models.BookingDeclined, models.BookingCancelled},
	models.BookingAccepted:   {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted, models.BookingCancelled},
	models.BookingCompleted:  {},
	models.BookingCancelled:  {},
	models.BookingDeclined:   {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the legal target statuses from the given status.
func AllowedNext(from models.BookingStatus) []models.BookingStatus {
	allowed := transitions[from]
	out := make([]models.BookingStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s models.BookingStatus) bool {
	allowed, known := transitions[s]
	return known && len(allowed) == 0
}

// timestampField maps a target status to the booking field stamped when the
// transition lands. Pending has no transition timestamp; it is the creation
// state.
func timestampField(to models.BookingStatus) string {
	switch to {
	case models.BookingAccepted:
		return "acceptedAt"
	case models.BookingInProgress:
		return "startedAt"
	case models.BookingCompleted:
		return "completedAt"
	case models.BookingCancelled:
		return "cancelledAt"
	}
	return ""
}
