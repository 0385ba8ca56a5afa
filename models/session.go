package models

import "time"

// Session is a server-side login session looked up by its opaque token.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`

	Token      string    `gorm:"size:128;uniqueIndex" json:"token"`
	CustomerID uint      `gorm:"column:customer_id;index" json:"customer_id"`
	ExpiresAt  time.Time `gorm:"column:expires_at" json:"expires_at"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
}
