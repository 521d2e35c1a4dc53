package services

import (
	"time"

	"rentloop-server/models"
	"rentloop-server/storage"
)

// bookingTransitions is the allowed status graph. Missing keys are terminal
// states.
var bookingTransitions = map[string][]string{
	models.BookingPending:  {models.BookingApproved, models.BookingRejected},
	models.BookingApproved: {models.BookingActive, models.BookingCancelled},
	models.BookingActive:   {models.BookingCompleted, models.BookingCancelled},
}

// CanTransition reports whether the status graph permits from -> to.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsBookingStatus reports whether s is one of the known lifecycle states.
func IsBookingStatus(s string) bool {
	switch s {
	case models.BookingPending, models.BookingApproved, models.BookingRejected,
		models.BookingActive, models.BookingCompleted, models.BookingCancelled:
		return true
	}
	return false
}

// BookingStateMachine validates and applies booking lifecycle changes.
type BookingStateMachine struct{}

func NewBookingStateMachine() *BookingStateMachine {
	return &BookingStateMachine{}
}

type CreateBookingInput struct {
	ItemID      uint
	RenterID    uint
	StartDate   string
	EndDate     string
	TotalAmount float64
	Message     string
}

const dateLayout = "2006-01-02"

// Create persists a new booking in pending state. The renter must not own the
// booked item, and the date range must be a valid forward interval.
func (sm *BookingStateMachine) Create(in CreateBookingInput) (*models.Booking, error) {
	item, err := storage.GetItem(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NewNotFound("Item not found")
	}
	if item.OwnerID == in.RenterID {
		return nil, NewInvalidOperation("Cannot book your own item")
	}

	start, startErr := time.Parse(dateLayout, in.StartDate)
	end, endErr := time.Parse(dateLayout, in.EndDate)
	if startErr != nil || endErr != nil {
		return nil, NewValidation("Dates must be in YYYY-MM-DD format")
	}
	if !end.After(start) {
		return nil, NewValidation("end_date must be after start_date")
	}
	if in.TotalAmount <= 0 {
		return nil, NewValidation("total_amount must be positive")
	}

	booking := models.Booking{
		ItemID:      in.ItemID,
		RenterID:    in.RenterID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalAmount: in.TotalAmount,
		Message:     in.Message,
		Status:      models.BookingPending,
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Transition moves a booking to newStatus on behalf of actorID. The write is
// an optimistic compare-and-swap on the status read here, so a concurrent
// transition loses cleanly instead of silently overwriting.
func (sm *BookingStateMachine) Transition(bookingID, actorID uint, newStatus string) (*models.Booking, error) {
	booking, err := storage.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFound("Booking not found")
	}

	item, err := storage.GetItem(booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NewNotFound("Item not found")
	}

	if !CanActOnBooking(actorID, booking, item) {
		return nil, NewForbidden("Not authorized to update this booking")
	}

	if !IsBookingStatus(newStatus) {
		return nil, NewValidation("Unknown booking status: " + newStatus)
	}
	if !CanTransition(booking.Status, newStatus) {
		return nil, NewInvalidTransition("Cannot move booking from " + booking.Status + " to " + newStatus)
	}

	res := storage.DB.Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, booking.Status).
		Updates(map[string]interface{}{"status": newStatus, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, NewConflict("Booking was updated concurrently, retry")
	}

	return storage.GetBooking(bookingID)
}
