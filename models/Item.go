package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item categories accepted by the API.
var ItemCategories = []string{"clothes", "tools", "electronics", "furniture", "vehicles", "other"}

type Item struct {
	gorm.Model
	OwnerID     uint    `json:"owner_id" gorm:"not null;index"`
	Owner       *User   `json:"-" gorm:"foreignKey:OwnerID"`
	Title       string  `json:"title" gorm:"size:200;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"type:varchar(20);index"`
	PricePerDay float64 `json:"price_per_day" gorm:"not null;check:price_per_day > 0"`

	// Geo point (lon/lat in degrees) plus free-text address. Nullable so rows
	// without coordinates are skipped by the radius filter instead of erroring.
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	Address    string   `json:"address,omitempty" gorm:"size:256"`
	City       string   `json:"city,omitempty" gorm:"size:128"`
	Country    string   `json:"country,omitempty" gorm:"size:128"`
	PostalCode string   `json:"postal_code,omitempty" gorm:"size:32"`

	// Ordered calendar dates in YYYY-MM-DD form.
	AvailableDates datatypes.JSON `json:"available_dates"`

	IsAvailable *bool `json:"is_available" gorm:"default:true;index"`

	// Derived by the rating aggregator; never set directly.
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`

	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ItemID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ItemID"`
}

// HasCoordinates reports whether the item carries a usable geo point.
func (i *Item) HasCoordinates() bool {
	return i.Lat != nil && i.Lon != nil
}
