package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:256;not null"`
	FullName     string `json:"full_name" gorm:"size:100"`
	Password     string `json:"-"`
	Phone        string `json:"phone,omitempty" gorm:"size:32"`
	Bio          string `json:"bio,omitempty" gorm:"type:text"`
	ProfileImage string `json:"profile_image,omitempty" gorm:"type:text"`
	Role         string `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin

	// Optional home location (lon/lat in degrees plus free-text address)
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
	Address    string   `json:"address,omitempty" gorm:"size:256"`
	City       string   `json:"city,omitempty" gorm:"size:128"`
	Country    string   `json:"country,omitempty" gorm:"size:128"`
	PostalCode string   `json:"postal_code,omitempty" gorm:"size:32"`

	// Derived from reviews of this user's items; never written directly.
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`

	IsVerified bool  `json:"is_verified" gorm:"default:false"`
	IsActive   *bool `json:"is_active" gorm:"default:true"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}
