package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"tour-backend/config"
	"tour-backend/controllers"
	"tour-backend/models"
	"tour-backend/routes"
	"tour-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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
	require.NoError(t, config.MigrateModels(db))
	return db
}

// newTestRouter wires the real route tree against an in-memory database.
// weatherURL points at a stub provider; empty means no API key configured.
func newTestRouter(t *testing.T, weatherURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	config.DB = db
	t.Cleanup(func() { config.DB = nil })

	packageSvc := services.NewPackageService(db)
	bookingSvc := services.NewBookingService(db)
	authSvc := services.NewAuthService(db)

	var weatherSvc *services.WeatherService
	if weatherURL == "" {
		weatherSvc = services.NewWeatherService("")
	} else {
		weatherSvc = services.NewWeatherService("test-key")
		weatherSvc.BaseURL = weatherURL
	}

	router := routes.SetupRouter(
		controllers.NewPackageController(packageSvc, weatherSvc),
		controllers.NewBookingController(bookingSvc, packageSvc),
		controllers.NewAuthController(authSvc),
		authSvc,
	)
	return router, db
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

func doRequest(router *gin.Engine, method, target string, body url.Values, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		reader = strings.NewReader(body.Encode())
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func validBookingForm() url.Values {
	return url.Values{
		"first_name": {"Asha"},
		"last_name":  {"Patel"},
		"email":      {"asha@example.com"},
		"phone":      {"+91-900-000-0000"},
		"address":    {"12 Lake Road, Pune"},
		"travelers":  {"2"},
		"start_date": {"2026-10-01"},
		"room_type":  {"deluxe"},
	}
}

func TestListPackagesIgnoresNonNumericPrice(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "8999.00", 4)
	seedPackage(t, db, "Manali Adventure Week", "Manali", models.CategoryAdventure, "15499.00", 7)
	seedPackage(t, db, "Kerala Honeymoon Cruise", "Kerala", models.CategoryHoneymoon, "22999.00", 6)

	w := doRequest(router, http.MethodGet, "/api/packages?price=abc", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["packages"], 3, "non-numeric price must leave the set unfiltered")
	assert.Len(t, body["categories"], 6)
}

func TestListPackagesSurvivesWeatherFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer provider.Close()

	router, db := newTestRouter(t, provider.URL)
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "8999.00", 4)

	w := doRequest(router, http.MethodGet, "/api/packages?destination=Goa", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["packages"], 1)
	assert.NotContains(t, body, "weather")
}

func TestListPackagesIncludesWeather(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "Goa",
			"main": {"temp": 29.4, "feels_like": 33.1, "humidity": 78},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer provider.Close()

	router, db := newTestRouter(t, provider.URL)
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "8999.00", 4)

	w := doRequest(router, http.MethodGet, "/api/packages?destination=Goa", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	weather, ok := body["weather"].(map[string]any)
	require.True(t, ok, "weather missing: %s", w.Body.String())
	assert.Equal(t, "Goa", weather["city"])
	assert.Equal(t, "Scattered Clouds", weather["desc"])
}

func TestPackageDetailNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/packages/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingValidationLeavesNoRow(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "1000.00", 4)

	form := validBookingForm()
	form.Set("email", "")

	w := doRequest(router, http.MethodPost, "/api/packages/1/book", form, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	message := body["message"].(map[string]any)
	assert.Equal(t, "error", message["level"])

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingAndConfirmation(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "1000.00", 4)

	w := doRequest(router, http.MethodPost, "/api/packages/1/book", validBookingForm(), nil)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "/api/bookings/1/confirmation", body["redirect"])
	message := body["message"].(map[string]any)
	assert.Equal(t, "success", message["level"])
	assert.Contains(t, message["text"], "Booking ID: 1")

	var stored models.Booking
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.True(t, stored.Subtotal.Equal(decimal.RequireFromString("2000.00")))
	assert.True(t, stored.GST.Equal(decimal.RequireFromString("360.00")))
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("2360.00")))

	conf := doRequest(router, http.MethodGet, "/api/bookings/1/confirmation", nil, nil)
	require.Equal(t, http.StatusOK, conf.Code)
	confBody := decodeBody(t, conf)
	booking := confBody["booking"].(map[string]any)
	assert.Equal(t, float64(1), booking["id"])
	pkgBody := confBody["package"].(map[string]any)
	assert.Equal(t, "Goa Beach Escape", pkgBody["title"])
}

func TestBookingConfirmationNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/bookings/42/confirmation", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFormNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/packages/7/book", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingFlow(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "1000.00", 4)

	// One booking per scenario.
	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodPost, "/api/packages/1/book", validBookingForm(), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	require.NoError(t, db.Model(&models.Booking{}).Where("id = ?", 2).
		Update("status", models.BookingStatusCompleted).Error)

	t.Run("pending is cancelled", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/bookings/1/cancel", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "/api/my-bookings", body["redirect"])
		assert.Equal(t, "success", body["message"].(map[string]any)["level"])

		var stored models.Booking
		require.NoError(t, db.First(&stored, 1).Error)
		assert.Equal(t, models.BookingStatusCancelled, stored.Status)
	})

	t.Run("cancelling again is informational", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/bookings/1/cancel", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "info", body["message"].(map[string]any)["level"])
	})

	t.Run("completed is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/bookings/2/cancel", nil, nil)
		require.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "error", body["message"].(map[string]any)["level"])

		var stored models.Booking
		require.NoError(t, db.First(&stored, 2).Error)
		assert.Equal(t, models.BookingStatusCompleted, stored.Status)
	})

	t.Run("missing booking", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/bookings/99/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cancel requires POST", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/bookings/3/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMyBookingsRequiresLogin(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/my-bookings", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/api/auth/login", body["redirect"])
	message := body["message"].(map[string]any)
	assert.Equal(t, "warning", message["level"])
	assert.Contains(t, message["text"], "login")
}

func TestMyBookingsScopedToCustomer(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "1000.00", 4)

	register := url.Values{
		"full_name": {"Asha Patel"},
		"email":     {"asha@example.com"},
		"password":  {"secret123"},
	}
	w := doRequest(router, http.MethodPost, "/api/auth/register", register, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	login := url.Values{"email": {"asha@example.com"}, "password": {"secret123"}}
	w = doRequest(router, http.MethodPost, "/api/auth/login", login, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	// One booking by the logged-in customer, one by someone else.
	w = doRequest(router, http.MethodPost, "/api/packages/1/book", validBookingForm(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	other := validBookingForm()
	other.Set("email", "stranger@example.com")
	w = doRequest(router, http.MethodPost, "/api/packages/1/book", other, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, "/api/my-bookings", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["has_bookings"])
	bookings := body["bookings"].([]any)
	require.Len(t, bookings, 1)
	assert.Equal(t, "asha@example.com", bookings[0].(map[string]any)["email"])
}

func TestSearchReturnsCountAndWeather(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "Goa",
			"main": {"temp": 29.4, "feels_like": 33.1, "humidity": 78},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 3.0}
		}`))
	}))
	defer provider.Close()

	router, db := newTestRouter(t, provider.URL)
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "8999.00", 4)
	seedPackage(t, db, "Goa Luxury Retreat", "Goa", models.CategoryLuxury, "34999.00", 5)
	seedPackage(t, db, "Manali Adventure Week", "Manali", models.CategoryAdventure, "15499.00", 7)

	w := doRequest(router, http.MethodGet, "/api/search?q=goa", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total_results"])
	assert.Len(t, body["packages"], 2)
	assert.Equal(t, "goa", body["query"])

	weather, ok := body["weather"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Clear Sky", weather["desc"])
}

func TestSearchIgnoresBadNumericFilters(t *testing.T) {
	router, db := newTestRouter(t, "")
	seedPackage(t, db, "Goa Beach Escape", "Goa", models.CategoryWeekend, "8999.00", 4)
	seedPackage(t, db, "Manali Adventure Week", "Manali", models.CategoryAdventure, "15499.00", 7)

	w := doRequest(router, http.MethodGet, "/api/search?min_price=low&max_price=high&duration=long", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total_results"])
}
