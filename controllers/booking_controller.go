package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"tour-backend/middleware"
	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

const myBookingsPath = "/api/my-bookings"

type BookingController struct {
	BookingSvc *services.BookingService
	PackageSvc *services.PackageService
}

func NewBookingController(bookingSvc *services.BookingService, packageSvc *services.PackageService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, PackageSvc: packageSvc}
}

// createBookingPayload accepts both form posts and JSON bodies.
type createBookingPayload struct {
	FirstName       string `form:"first_name" json:"first_name"`
	LastName        string `form:"last_name" json:"last_name"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone" json:"phone"`
	Address         string `form:"address" json:"address"`
	Travelers       int    `form:"travelers" json:"travelers"`
	StartDate       string `form:"start_date" json:"start_date"`
	RoomType        string `form:"room_type" json:"room_type"`
	SpecialRequests string `form:"special_requests" json:"special_requests"`
}

// BookingForm (GET /api/packages/:id/book) returns the view model for an
// empty booking form, pre-filled with the package.
func (ctrl *BookingController) BookingForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pkg, err := ctrl.PackageSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found")
			return
		}
		log.Printf("BookingForm error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package": pkg,
		"site":    currentSiteSettings(),
	})
}

// CreateBooking (POST /api/packages/:id/book) validates the submission,
// prices it and persists a pending booking. Validation failures re-offer
// the form data with an error message and write nothing.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pkg, err := ctrl.PackageSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found")
			return
		}
		log.Printf("CreateBooking package fetch error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package")
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": utils.Flash(utils.FlashError, "Please fill all required fields."),
			"package": pkg,
		})
		return
	}

	booking, err := ctrl.BookingSvc.Create(pkg, services.BookingRequest{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Address:         payload.Address,
		Travelers:       payload.Travelers,
		StartDate:       payload.StartDate,
		RoomType:        payload.RoomType,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": utils.Flash(utils.FlashError, "Please fill all required fields."),
				"detail":  verr.Error(),
				"package": pkg,
			})
			return
		}

		log.Printf("CreateBooking error for package %d: %v", pkg.ID, err)
		status := http.StatusInternalServerError
		if services.IsConstraintError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"message": utils.Flash(utils.FlashError, "Error creating booking."),
			"package": pkg,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  utils.Flash(utils.FlashSuccess, fmt.Sprintf("Booking created successfully! Booking ID: %d.", booking.ID)),
		"booking":  booking,
		"redirect": fmt.Sprintf("/api/bookings/%d/confirmation", booking.ID),
	})
}

// BookingConfirmation (GET /api/bookings/:id/confirmation) shows a
// booking together with its package.
func (ctrl *BookingController) BookingConfirmation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetWithPackage(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("BookingConfirmation error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"package": booking.Package,
		"site":    currentSiteSettings(),
	})
}

// MyBookings (GET /api/my-bookings) lists the authenticated customer's
// bookings, newest first. Results are scoped to the requesting identity;
// handing every customer's bookings to any logged-in user would be an
// authorization hole.
func (ctrl *BookingController) MyBookings(c *gin.Context) {
	customer := c.MustGet(middleware.CustomerKey).(models.Customer)

	bookings, err := ctrl.BookingSvc.ListByEmail(customer.Email)
	if err != nil {
		log.Printf("MyBookings error for %s: %v", customer.Email, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":     bookings,
		"has_bookings": len(bookings) > 0,
	})
}

// CancelBooking (POST /api/bookings/:id/cancel) runs the cancel state
// machine. Whatever the outcome, the response points back at the
// my-bookings view.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Cancel(id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":  utils.Flash(utils.FlashSuccess, "Booking cancelled successfully."),
			"booking":  booking,
			"redirect": myBookingsPath,
		})
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found")
	case errors.Is(err, services.ErrBookingCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"message":  utils.Flash(utils.FlashError, "Completed bookings cannot be cancelled."),
			"booking":  booking,
			"redirect": myBookingsPath,
		})
	case errors.Is(err, services.ErrBookingAlreadyCancelled):
		c.JSON(http.StatusOK, gin.H{
			"message":  utils.Flash(utils.FlashInfo, "This booking is already cancelled."),
			"booking":  booking,
			"redirect": myBookingsPath,
		})
	default:
		log.Printf("CancelBooking error for %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
	}
}
