package services

import (
	"testing"

	"rentloop-server/models"

	"github.com/stretchr/testify/require"
)

func TestCanMutateItem(t *testing.T) {
	item := &models.Item{OwnerID: 7}

	require.True(t, CanMutateItem(7, item))
	require.False(t, CanMutateItem(8, item))
}

func TestCanActOnBooking(t *testing.T) {
	item := &models.Item{OwnerID: 1}
	booking := &models.Booking{ItemID: 10, RenterID: 2}

	require.True(t, CanActOnBooking(1, booking, item), "item owner may act")
	require.True(t, CanActOnBooking(2, booking, item), "renter may act")
	require.False(t, CanActOnBooking(3, booking, item), "third parties may not act")
}
