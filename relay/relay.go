package relay

import (
	"log"
	"time"
	"unicode/utf8"

	"rentloop-server/models"
	"rentloop-server/services"
)

// WireMessage is the frame pushed to a connected receiver.
type WireMessage struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// MessageStore is the persistence the relay needs.
type MessageStore interface {
	Create(message *models.Message) error
	Conversation(userA, userB uint) ([]models.Message, error)
	MarkRead(messageID, readerID uint) error
}

// Relay persists chat messages and delivers them to the receiver's live
// channel when one is registered.
type Relay struct {
	store    MessageStore
	registry *Registry
}

func NewRelay(store MessageStore, registry *Registry) *Relay {
	return &Relay{store: store, registry: registry}
}

// Send stores the message, then attempts real-time delivery. Delivery is
// fire-and-forget: a closed or missing receiver channel leaves the message
// persisted for the receiver's next history fetch.
func (r *Relay) Send(senderID, receiverID uint, content string) (*models.Message, error) {
	if n := utf8.RuneCountInString(content); n == 0 || n > 1000 {
		return nil, services.NewValidation("content must be 1-1000 characters")
	}

	message := models.Message{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Content:     content,
		MessageType: "text",
	}
	if err := r.store.Create(&message); err != nil {
		return nil, err
	}

	if ch, ok := r.registry.Lookup(receiverID); ok {
		frame := WireMessage{
			ID:         message.ID,
			SenderID:   message.SenderID,
			ReceiverID: message.ReceiverID,
			Content:    message.Content,
			CreatedAt:  message.CreatedAt,
		}
		if err := ch.WriteJSON(frame); err != nil {
			log.Printf("message %d: delivery to user %d failed: %v", message.ID, receiverID, err)
		}
	}

	return &message, nil
}

// History returns the conversation between two users, ascending by creation
// time. The pair is symmetric: History(a, b) == History(b, a).
func (r *Relay) History(userA, userB uint) ([]models.Message, error) {
	return r.store.Conversation(userA, userB)
}

// MarkRead flags a message as read, only when readerID is its receiver.
func (r *Relay) MarkRead(messageID, readerID uint) error {
	return r.store.MarkRead(messageID, readerID)
}
