package models

import "gorm.io/gorm"

// Booking lifecycle states. pending -> approved|rejected, approved ->
// active|cancelled, active -> completed|cancelled; rejected, completed and
// cancelled are terminal.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingRejected  = "rejected"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	gorm.Model
	ItemID      uint    `json:"item_id" gorm:"not null;index"`
	Item        *Item   `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	RenterID    uint    `json:"renter_id" gorm:"not null;index"`
	Renter      *User   `json:"renter,omitempty" gorm:"foreignKey:RenterID"`
	StartDate   string  `json:"start_date" gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	EndDate     string  `json:"end_date" gorm:"type:varchar(10);not null"`   // YYYY-MM-DD
	TotalAmount float64 `json:"total_amount" gorm:"not null;check:total_amount > 0"`
	Message     string  `json:"message,omitempty" gorm:"type:text"`
	Status      string  `json:"status" gorm:"type:varchar(20);default:pending;index"`
}
