package services

import (
	"rentloop-server/models"
	"rentloop-server/storage"
)

// RatingAggregator recomputes an item's derived rating fields from its full
// review set. Recomputing from scratch keeps the stored pair consistent with
// whatever snapshot of reviews the store returns, at O(n) per review.
type RatingAggregator struct{}

func NewRatingAggregator() *RatingAggregator {
	return &RatingAggregator{}
}

// Recompute fetches all reviews for the item and persists the new average and
// count. Returns the persisted pair.
func (ra *RatingAggregator) Recompute(itemID uint) (float64, int, error) {
	var reviews []models.Review
	if err := storage.DB.Where("item_id = ?", itemID).Find(&reviews).Error; err != nil {
		return 0, 0, err
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	avg := meanRating(ratings)

	err := storage.DB.Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{"rating": avg, "total_reviews": len(reviews)}).Error
	if err != nil {
		return 0, 0, err
	}
	return avg, len(reviews), nil
}

// meanRating is the arithmetic mean, zero for an empty set.
func meanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return float64(total) / float64(len(ratings))
}
