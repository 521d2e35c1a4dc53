package models

import "gorm.io/gorm"

type Message struct {
	gorm.Model
	SenderID    uint   `json:"sender_id" gorm:"not null;index:idx_messages_pair,priority:1"`
	Sender      *User  `json:"-" gorm:"foreignKey:SenderID"`
	ReceiverID  uint   `json:"receiver_id" gorm:"not null;index:idx_messages_pair,priority:2"`
	Receiver    *User  `json:"-" gorm:"foreignKey:ReceiverID"`
	Content     string `json:"content" gorm:"type:text;not null"`
	MessageType string `json:"message_type" gorm:"type:varchar(32);default:text"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
}
