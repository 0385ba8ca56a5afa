package services

import (
	"path/filepath"
	"testing"

	"tour-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.SiteSetting{},
		&models.Customer{},
		&models.Session{},
		&models.Package{},
		&models.Itinerary{},
		&models.Booking{},
	))
	return db
}

func seedPackage(t *testing.T, db *gorm.DB, title, destination, category, price string, days int) models.Package {
	t.Helper()

	pkg := models.Package{
		Title:       title,
		Description: title + " description",
		Destination: destination,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		Days:        days,
	}
	require.NoError(t, db.Create(&pkg).Error)
	return pkg
}

func validBookingRequest() BookingRequest {
	return BookingRequest{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "asha@example.com",
		Phone:     "+91-900-000-0000",
		Address:   "12 Lake Road, Pune",
		Travelers: 2,
		StartDate: "2026-10-01",
		RoomType:  "deluxe",
	}
}
