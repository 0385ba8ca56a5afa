package models

// Itinerary is one day's plan inside a package's schedule. Day is 1-based
// and rows are displayed ordered by day ascending.
type Itinerary struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PackageID   uint   `gorm:"column:package_id;index" json:"package_id"`
	Day         int    `gorm:"column:day" json:"day"`
	Description string `gorm:"type:text" json:"description"`
}
