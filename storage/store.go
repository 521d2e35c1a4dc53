package storage

import (
	"errors"

	"rentloop-server/models"

	"gorm.io/gorm"
)

// Typed lookups so callers depend on explicit contracts instead of walking
// foreign keys with ad hoc queries. A (nil, nil) return means not found.

func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetItem(id uint) (*models.Item, error) {
	var item models.Item
	if err := DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// GetItemOwner resolves the owning user of an item in one hop.
func GetItemOwner(itemID uint) (*models.User, error) {
	item, err := GetItem(itemID)
	if err != nil || item == nil {
		return nil, err
	}
	return GetUser(item.OwnerID)
}

// MessageStore runs the chat persistence queries against the global DB.
type MessageStore struct{}

func (MessageStore) Create(message *models.Message) error {
	return DB.Create(message).Error
}

// Conversation returns both directions of the pair, ascending by creation
// time. The where clause is symmetric in its arguments.
func (MessageStore) Conversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (MessageStore) MarkRead(messageID, readerID uint) error {
	return DB.Model(&models.Message{}).
		Where("id = ? AND receiver_id = ?", messageID, readerID).
		Update("is_read", true).Error
}
