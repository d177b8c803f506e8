package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/freshnest/freshnest-cleaning-api/models"
	"github.com/freshnest/freshnest-cleaning-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingNotifier captures confirmation emails instead of sending them
type recordingNotifier struct {
	sent []*models.Booking
	err  error
}

func (n *recordingNotifier) SendBookingConfirmation(booking *models.Booking) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, booking)
	return nil
}

func setupBookingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Service{}, &models.Booking{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupBookingRouter(db *gorm.DB, notifier services.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")

	bc := NewBookingController(db, notifier, nil)
	router.GET("/services", bc.ListServices)
	router.GET("/services/:id/booking-form", bc.ShowBookingForm)
	router.POST("/bookings", bc.CreateBooking)
	router.GET("/bookings/:reference", bc.ShowConfirmation)

	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var referencePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestCreateBooking(t *testing.T) {
	db := setupBookingTestDB(t)
	notifier := &recordingNotifier{}
	router := setupBookingRouter(db, notifier)

	service := models.Service{Name: "Regular Cleaning", Description: "Complete home cleaning", Price: 89.99, Duration: 3, Category: "Regular"}
	db.Create(&service)

	validForm := func() url.Values {
		return url.Values{
			"service_id": {strconv.Itoa(int(service.ID))},
			"name":       {"Jane Doe"},
			"email":      {"jane@example.com"},
			"phone":      {"555-0100"},
			"address":    {"42 Elm Street"},
			"date":       {"2025-06-01"},
			"time":       {"10:00"},
		}
	}

	tests := []struct {
		name           string
		mutate         func(form url.Values)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful booking redirects to confirmation",
			mutate:         func(url.Values) {},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "unknown service id",
			mutate:         func(form url.Values) { form.Set("service_id", "9999") },
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
		{
			name:           "non-numeric service id",
			mutate:         func(form url.Values) { form.Set("service_id", "abc") },
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
		{
			name:           "date out of range",
			mutate:         func(form url.Values) { form.Set("date", "2025-13-40") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "time out of range",
			mutate:         func(form url.Values) { form.Set("time", "25:99") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "missing name",
			mutate:         func(form url.Values) { form.Del("name") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before int64
			db.Model(&models.Booking{}).Count(&before)

			form := validForm()
			tt.mutate(form)
			w := postForm(router, "/bookings", form)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var after int64
			db.Model(&models.Booking{}).Count(&after)

			if tt.expectedError != "" {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.False(t, response["success"].(bool))
				errData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errData["code"])
				assert.Equal(t, before, after, "failed booking must not write a row")
				return
			}

			assert.Equal(t, before+1, after)

			location := w.Header().Get("Location")
			assert.True(t, strings.HasPrefix(location, "/bookings/"), "redirect should target the confirmation page")
			reference := strings.TrimPrefix(location, "/bookings/")
			assert.Regexp(t, referencePattern, reference)

			var booking models.Booking
			assert.NoError(t, db.Where("booking_reference = ?", reference).First(&booking).Error)
			assert.Equal(t, models.BookingStatusPending, booking.Status)
			assert.Equal(t, 89.99, booking.TotalPrice)
			assert.Equal(t, "Jane Doe", booking.CustomerName)
			assert.Equal(t, "10:00", booking.BookingTime)
			assert.Equal(t, "2025-06-01", booking.BookingDate.Format("2006-01-02"))
		})
	}
}

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	service := models.Service{Name: "Deep Cleaning", Description: "Intensive cleaning", Price: 199.99, Duration: 6, Category: "Deep"}
	db.Create(&service)

	w := postForm(router, "/bookings", url.Values{
		"service_id": {strconv.Itoa(int(service.ID))},
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"555-0100"},
		"address":    {"42 Elm Street"},
		"date":       {"2025-06-01"},
		"time":       {"10:00"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	reference := strings.TrimPrefix(w.Header().Get("Location"), "/bookings/")

	// Changing the service price afterwards must not touch the booking
	assert.NoError(t, db.Model(&service).Update("price", 249.99).Error)

	var booking models.Booking
	assert.NoError(t, db.Where("booking_reference = ?", reference).First(&booking).Error)
	assert.Equal(t, 199.99, booking.TotalPrice)
}

func TestCreateBookingNotifierFailureIsSwallowed(t *testing.T) {
	db := setupBookingTestDB(t)
	notifier := &recordingNotifier{err: assert.AnError}
	router := setupBookingRouter(db, notifier)

	service := models.Service{Name: "Office Cleaning", Description: "Commercial cleaning", Price: 149.99, Duration: 4, Category: "Commercial"}
	db.Create(&service)

	w := postForm(router, "/bookings", url.Values{
		"service_id": {strconv.Itoa(int(service.ID))},
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"555-0100"},
		"address":    {"42 Elm Street"},
		"date":       {"2025-06-01"},
		"time":       {"10:00"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code, "a failing notifier must not fail the booking")

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingInvokesNotifier(t *testing.T) {
	db := setupBookingTestDB(t)
	notifier := &recordingNotifier{}
	router := setupBookingRouter(db, notifier)

	service := models.Service{Name: "Regular Cleaning", Description: "Complete home cleaning", Price: 89.99, Duration: 3, Category: "Regular"}
	db.Create(&service)

	w := postForm(router, "/bookings", url.Values{
		"service_id": {strconv.Itoa(int(service.ID))},
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"555-0100"},
		"address":    {"42 Elm Street"},
		"date":       {"2025-06-01"},
		"time":       {"10:00"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, "jane@example.com", notifier.sent[0].CustomerEmail)
	assert.Equal(t, "Regular Cleaning", notifier.sent[0].Service.Name, "notifier receives the booking with its service loaded")
}

func TestShowConfirmation(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	service := models.Service{Name: "Regular Cleaning", Description: "Complete home cleaning", Price: 89.99, Duration: 3, Category: "Regular"}
	db.Create(&service)

	w := postForm(router, "/bookings", url.Values{
		"service_id": {strconv.Itoa(int(service.ID))},
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"555-0100"},
		"address":    {"42 Elm Street"},
		"date":       {"2025-06-01"},
		"time":       {"10:00"},
	})
	reference := strings.TrimPrefix(w.Header().Get("Location"), "/bookings/")

	req, _ := http.NewRequest("GET", "/bookings/"+reference, nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	body := w2.Body.String()
	assert.Contains(t, body, reference)
	assert.Contains(t, body, "Regular Cleaning")
	assert.Contains(t, body, "89.99")
	assert.Contains(t, body, "2025-06-01")
}

func TestShowConfirmationUnknownReference(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	req, _ := http.NewRequest("GET", "/bookings/ZZZZ9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListServices(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	db.Create(&models.Service{Name: "Regular Cleaning", Description: "Complete home cleaning", Price: 89.99, Duration: 3, Category: "Regular"})
	db.Create(&models.Service{Name: "Deep Cleaning", Description: "Intensive cleaning", Price: 199.99, Duration: 6, Category: "Deep"})

	req, _ := http.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Regular Cleaning")
	assert.Contains(t, body, "Deep Cleaning")
	assert.Contains(t, body, "199.99")
}

func TestShowBookingForm(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	service := models.Service{Name: "Regular Cleaning", Description: "Complete home cleaning", Price: 89.99, Duration: 3, Category: "Regular"}
	db.Create(&service)

	req, _ := http.NewRequest("GET", "/services/"+strconv.Itoa(int(service.ID))+"/booking-form", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Regular Cleaning")
}

func TestShowBookingFormUnknownService(t *testing.T) {
	db := setupBookingTestDB(t)
	router := setupBookingRouter(db, &recordingNotifier{})

	req, _ := http.NewRequest("GET", "/services/9999/booking-form", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
