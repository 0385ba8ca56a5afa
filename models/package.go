package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Package categories. The set is fixed; filters with any other value
// simply match nothing.
const (
	CategoryHoneymoon = "honeymoon"
	CategoryFamily    = "family"
	CategoryAdventure = "adventure"
	CategoryWeekend   = "weekend"
	CategoryLuxury    = "luxury"
	CategoryBudget    = "budget"
)

type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories returns the fixed category list used by UI filter controls.
func Categories() []CategoryOption {
	return []CategoryOption{
		{CategoryHoneymoon, "Honeymoon"},
		{CategoryFamily, "Family"},
		{CategoryAdventure, "Adventure"},
		{CategoryWeekend, "Weekend Getaway"},
		{CategoryLuxury, "Luxury"},
		{CategoryBudget, "Budget"},
	}
}

// Package is a tour package on offer. Read-only from the booking
// workflow's point of view.
type Package struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title       string          `gorm:"size:200" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Destination string          `gorm:"size:120;index" json:"destination"`
	Category    string          `gorm:"size:32;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Days        int             `gorm:"column:days" json:"days"`

	Highlights datatypes.JSON `gorm:"column:highlights" json:"highlights,omitempty"`

	Itineraries []Itinerary `gorm:"foreignKey:PackageID" json:"itineraries,omitempty"`
}
