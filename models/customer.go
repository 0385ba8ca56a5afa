package models

import "time"

// Customer is an account that can log in and view its own bookings.
// Bookings are matched to the customer by email.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName string `gorm:"size:160" json:"full_name"`
	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Password string `gorm:"size:120" json:"-"`
}
