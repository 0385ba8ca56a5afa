package models

import "time"

// SiteSetting is the singleton hero/branding row returned alongside
// listing, detail and search view models.
type SiteSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Headline   string `gorm:"size:200" json:"headline"`
	Subheading string `gorm:"size:300" json:"subheading"`
	ImageURL   string `gorm:"size:300" json:"image_url"`
	Phone      string `gorm:"size:32" json:"phone"`
	Email      string `gorm:"size:120" json:"email"`
}
