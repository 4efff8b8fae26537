package booking

import (
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		allowed  bool
	}{
		{models.BookingPending, models.BookingAccepted, true},
		{models.BookingPending, models.BookingDeclined, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingInProgress, false},
		{models.BookingPending, models.BookingCompleted, false},

		{models.BookingAccepted, models.BookingInProgress, true},
		{models.BookingAccepted, models.BookingCancelled, true},
		{models.BookingAccepted, models.BookingCompleted, false},
		{models.BookingAccepted, models.BookingDeclined, false},
		{models.BookingAccepted, models.BookingPending, false},

		{models.BookingInProgress, models.BookingCompleted, true},
		{models.BookingInProgress, models.BookingCancelled, true},
		{models.BookingInProgress, models.BookingAccepted, false},

		{models.BookingCompleted, models.BookingPending, false},
		{models.BookingCancelled, models.BookingAccepted, false},
		{models.BookingDeclined, models.BookingAccepted, false},
	}

	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, s := range []models.BookingStatus{
		models.BookingCompleted,
		models.BookingCancelled,
		models.BookingDeclined,
	} {
		assert.Truef(t, IsTerminal(s), "%s should be terminal", s)
		assert.Emptyf(t, AllowedNext(s), "%s should allow no transitions", s)
	}
}

func TestNonTerminalStatuses(t *testing.T) {
	for _, s := range []models.BookingStatus{
		models.BookingPending,
		models.BookingAccepted,
		models.BookingInProgress,
	} {
		assert.Falsef(t, IsTerminal(s), "%s should not be terminal", s)
		assert.NotEmptyf(t, AllowedNext(s), "%s should allow transitions", s)
	}
}

func TestUnknownStatusIsNotTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.BookingStatus("archived")))
	assert.False(t, CanTransition(models.BookingStatus("archived"), models.BookingAccepted))
}
