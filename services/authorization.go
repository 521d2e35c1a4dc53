package services

import "rentloop-server/models"

// Permission checks derived from entity ownership. Pure functions; callers
// translate false into a Forbidden error.

// CanMutateItem reports whether userID may update or delete the item.
func CanMutateItem(userID uint, item *models.Item) bool {
	return userID == item.OwnerID
}

// CanActOnBooking reports whether userID may transition the booking. Both the
// renter and the owner of the booked item qualify.
func CanActOnBooking(userID uint, booking *models.Booking, item *models.Item) bool {
	return userID == booking.RenterID || userID == item.OwnerID
}
