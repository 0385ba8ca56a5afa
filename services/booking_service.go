package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tour-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const startDateLayout = "2006-01-02"

// BookingService wraps *gorm.DB for the booking workflow: creation with
// pricing, confirmation lookup, per-customer listing and cancellation.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingRequest carries the submitted form fields before validation.
type BookingRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	Travelers       int
	StartDate       string
	RoomType        string
	SpecialRequests string
}

// Validate checks the required fields and parses the start date. It
// returns a *ValidationError naming the first offending field.
func (r *BookingRequest) Validate() (time.Time, error) {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
		{"start_date", r.StartDate},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return time.Time{}, &ValidationError{Field: field.name}
		}
	}

	start, err := time.Parse(startDateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return time.Time{}, &ValidationError{Field: "start_date"}
	}
	if r.Travelers < 0 {
		return time.Time{}, &ValidationError{Field: "travelers"}
	}
	return start, nil
}

// Create validates the request, computes pricing and persists a pending
// booking. The insert is a single row, so either the booking exists with
// all fields set or nothing was written.
func (s *BookingService) Create(pkg models.Package, req BookingRequest) (models.Booking, error) {
	start, err := req.Validate()
	if err != nil {
		return models.Booking{}, err
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	subtotal, gst, total := ComputePricing(pkg.Price, travelers)

	booking := models.Booking{
		PackageID:         pkg.ID,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		Address:           strings.TrimSpace(req.Address),
		NumberOfTravelers: travelers,
		StartDate:         start,
		RoomType:          strings.TrimSpace(req.RoomType),
		SpecialRequests:   strings.TrimSpace(req.SpecialRequests),
		Subtotal:          subtotal,
		GST:               gst,
		TotalAmount:       total,
		Status:            models.BookingStatusPending,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// GetWithPackage loads a booking and its package, or ErrBookingNotFound.
func (s *BookingService) GetWithPackage(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Package").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("fetch booking %d: %w", id, err)
	}
	return booking, nil
}

// ListByEmail returns the bookings made under the given email address,
// newest first.
func (s *BookingService) ListByEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Package").
		Where("email = ?", strings.TrimSpace(email)).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// Cancel applies the status state machine: completed bookings are
// rejected, cancelled ones are a no-op, anything else becomes cancelled.
// Concurrent cancels race last-write-wins, which is acceptable here.
func (s *BookingService) Cancel(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("fetch booking %d: %w", id, err)
	}

	switch booking.Status {
	case models.BookingStatusCompleted:
		return booking, ErrBookingCompleted
	case models.BookingStatusCancelled:
		return booking, ErrBookingAlreadyCancelled
	}

	if err := s.DB.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		return models.Booking{}, fmt.Errorf("cancel booking %d: %w", id, err)
	}
	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

// IsConstraintError reports whether err is a MySQL foreign key or
// duplicate key violation, so the create path can answer 400 instead of
// a generic 500.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452 || merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "constraint")
}
