package services

import (
	"rentloop-server/models"
	"rentloop-server/storage"
)

// Marketplace is the orchestration facade the API boundary talks to. It wires
// the booking state machine, the geo filter and the rating aggregator on top
// of the store.
type Marketplace struct {
	Bookings *BookingStateMachine
	Ratings  *RatingAggregator
}

func NewMarketplace() *Marketplace {
	return &Marketplace{
		Bookings: NewBookingStateMachine(),
		Ratings:  NewRatingAggregator(),
	}
}

// ItemQuery carries the public listing filters. Center and MaxDistanceKm must
// both be set for the radius filter to apply.
type ItemQuery struct {
	Category      string
	Center        *Point
	MaxDistanceKm *float64
	Limit         int
	Skip          int
}

// SearchItems returns available items matching the query. The radius filter
// runs over the already-paged candidate list, so a page can shrink below
// Limit when distant items are dropped.
func (m *Marketplace) SearchItems(q ItemQuery) ([]models.Item, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}

	tx := storage.DB.Where("is_available = ?", true)
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	var items []models.Item
	if err := tx.Offset(q.Skip).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}

	if q.Center != nil && q.MaxDistanceKm != nil {
		items = FilterByRadius(items, *q.Center, *q.MaxDistanceKm)
	}
	return items, nil
}

// UpdateItem applies the given column updates if actorID owns the item.
func (m *Marketplace) UpdateItem(itemID, actorID uint, updates map[string]interface{}) (*models.Item, error) {
	item, err := storage.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NewNotFound("Item not found")
	}
	if !CanMutateItem(actorID, item) {
		return nil, NewForbidden("Not authorized to update this item")
	}
	if len(updates) == 0 {
		return item, nil
	}
	if err := storage.DB.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return storage.GetItem(itemID)
}

// DeleteItem removes the item if actorID owns it.
func (m *Marketplace) DeleteItem(itemID, actorID uint) error {
	item, err := storage.GetItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return NewNotFound("Item not found")
	}
	if !CanMutateItem(actorID, item) {
		return NewForbidden("Not authorized to delete this item")
	}
	return storage.DB.Delete(item).Error
}

// ListBookingsFor returns every booking where userID is the renter or owns
// the booked item.
func (m *Marketplace) ListBookingsFor(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := storage.DB.
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("bookings.renter_id = ? OR items.owner_id = ?", userID, userID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

type CreateReviewInput struct {
	ItemID  uint
	Rating  int
	Comment string
}

// CreateReview records a review authorized by one of the reviewer's completed
// bookings for the item, then recomputes the item's derived rating. Each
// completed booking authorizes exactly one review.
func (m *Marketplace) CreateReview(reviewerID uint, in CreateReviewInput) (*models.Review, error) {
	item, err := storage.GetItem(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NewNotFound("Item not found")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewValidation("rating must be between 1 and 5")
	}

	var completed []models.Booking
	err = storage.DB.
		Where("item_id = ? AND renter_id = ? AND status = ?", in.ItemID, reviewerID, models.BookingCompleted).
		Order("created_at ASC").
		Find(&completed).Error
	if err != nil {
		return nil, err
	}
	if len(completed) == 0 {
		return nil, NewInvalidOperation("You can only review items you have rented")
	}

	// Pick the oldest completed booking that has not been reviewed yet.
	var authorizing *models.Booking
	for i := range completed {
		var count int64
		if err := storage.DB.Model(&models.Review{}).
			Where("booking_id = ?", completed[i].ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			authorizing = &completed[i]
			break
		}
	}
	if authorizing == nil {
		return nil, NewInvalidOperation("You have already reviewed this rental")
	}

	review := models.Review{
		ItemID:     in.ItemID,
		ReviewerID: reviewerID,
		BookingID:  authorizing.ID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		return nil, err
	}

	if _, _, err := m.Ratings.Recompute(in.ItemID); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviews returns all reviews for an item, newest first.
func (m *Marketplace) ListReviews(itemID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := storage.DB.Preload("Reviewer").
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
