package services

import (
	"testing"

	"rentloop-server/models"

	"github.com/stretchr/testify/require"
)

func TestCanTransitionAllowedMoves(t *testing.T) {
	allowed := [][2]string{
		{models.BookingPending, models.BookingApproved},
		{models.BookingPending, models.BookingRejected},
		{models.BookingApproved, models.BookingActive},
		{models.BookingApproved, models.BookingCancelled},
		{models.BookingActive, models.BookingCompleted},
		{models.BookingActive, models.BookingCancelled},
	}
	for _, pair := range allowed {
		require.True(t, CanTransition(pair[0], pair[1]), "%s -> %s should be allowed", pair[0], pair[1])
	}
}

func TestCanTransitionRejectsEverythingElse(t *testing.T) {
	states := []string{
		models.BookingPending, models.BookingApproved, models.BookingRejected,
		models.BookingActive, models.BookingCompleted, models.BookingCancelled,
	}

	allowed := map[string]bool{
		"pending>approved":  true,
		"pending>rejected":  true,
		"approved>active":   true,
		"approved>cancelled": true,
		"active>completed":  true,
		"active>cancelled":  true,
	}

	for _, from := range states {
		for _, to := range states {
			want := allowed[from+">"+to]
			require.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []string{models.BookingRejected, models.BookingCompleted, models.BookingCancelled} {
		for _, to := range []string{
			models.BookingPending, models.BookingApproved, models.BookingRejected,
			models.BookingActive, models.BookingCompleted, models.BookingCancelled,
		} {
			require.False(t, CanTransition(terminal, to), "%s must be terminal", terminal)
		}
	}
}

func TestIsBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "active", "completed", "cancelled"} {
		require.True(t, IsBookingStatus(s))
	}
	require.False(t, IsBookingStatus("confirmed"))
	require.False(t, IsBookingStatus(""))
	require.False(t, IsBookingStatus("Pending"))
}
