package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking status values. A booking moves pending -> completed (outside
// this workflow) or pending -> cancelled; it is never deleted.
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	PackageID uint `gorm:"column:package_id;index" json:"package_id"`

	FirstName string `gorm:"size:80" json:"first_name"`
	LastName  string `gorm:"size:80" json:"last_name"`
	Email     string `gorm:"size:120;index" json:"email"`
	Phone     string `gorm:"size:32" json:"phone"`
	Address   string `gorm:"type:text" json:"address"`

	NumberOfTravelers int       `gorm:"column:number_of_travelers;default:1" json:"number_of_travelers"`
	StartDate         time.Time `gorm:"type:date" json:"start_date"`
	RoomType          string    `gorm:"size:64" json:"room_type,omitempty"`
	SpecialRequests   string    `gorm:"type:text" json:"special_requests,omitempty"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	GST         decimal.Decimal `gorm:"column:gst;type:decimal(10,2)" json:"gst"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`

	Status string `gorm:"size:32;index;default:pending" json:"status"`

	Package Package `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`
}
