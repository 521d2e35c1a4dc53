package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ItemID     uint     `json:"item_id" gorm:"not null;index"`
	Item       *Item    `json:"-" gorm:"foreignKey:ItemID"`
	ReviewerID uint     `json:"reviewer_id" gorm:"not null;index"`
	Reviewer   *User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	BookingID  uint     `json:"booking_id" gorm:"not null;uniqueIndex"` // the completed booking that authorizes this review
	Booking    *Booking `json:"-" gorm:"foreignKey:BookingID"`
	Rating     int      `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string   `json:"comment,omitempty" gorm:"type:text"`
}
