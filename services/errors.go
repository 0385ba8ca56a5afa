package services

import (
	"errors"
	"fmt"
)

// Sentinel errors so controllers can map failures to responses without
// string matching.
var (
	ErrPackageNotFound = errors.New("package not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Cancel state machine.
	ErrBookingCompleted        = errors.New("completed bookings cannot be cancelled")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")

	// Auth.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionInvalid     = errors.New("invalid or expired session")

	// Weather enrichment, one per failure mode. Callers treat all of them
	// as "no weather data".
	ErrWeatherRequest = errors.New("weather request failed")
	ErrWeatherStatus  = errors.New("weather provider returned non-OK status")
	ErrWeatherDecode  = errors.New("weather payload could not be decoded")
)

// ValidationError marks a missing or malformed booking field. The message
// is safe to show to the user.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}
