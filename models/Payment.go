package models

import "gorm.io/gorm"

// Payment is a data shape only; capture and settlement happen outside this
// service.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	gorm.Model
	BookingID  uint     `json:"booking_id" gorm:"not null;index"`
	Booking    *Booking `json:"-" gorm:"foreignKey:BookingID"`
	Amount     float64  `json:"amount" gorm:"not null;check:amount > 0"`
	Currency   string   `json:"currency" gorm:"type:varchar(8);default:usd"`
	ExternalID string   `json:"external_id,omitempty" gorm:"size:128"` // payment-provider reference
	Status     string   `json:"status" gorm:"type:varchar(20);default:pending;index"`
}
