package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/freshnest/freshnest-cleaning-api/models"
	"github.com/freshnest/freshnest-cleaning-api/services"
	"github.com/freshnest/freshnest-cleaning-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookingController serves the public booking flow: the catalog listing,
// the booking form, booking creation, and the confirmation page.
type BookingController struct {
	db       *gorm.DB
	notifier services.Notifier
	images   services.CatalogImages
}

// NewBookingController wires the public booking handlers to their dependencies
func NewBookingController(db *gorm.DB, notifier services.Notifier, images services.CatalogImages) *BookingController {
	return &BookingController{
		db:       db,
		notifier: notifier,
		images:   images,
	}
}

// ListServices handles GET /services - renders the service catalog
func (bc *BookingController) ListServices(c *gin.Context) {
	var catalog []models.Service
	if err := bc.db.Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load services",
			},
		})
		return
	}

	resolveServiceImageURLs(bc.images, catalog)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"services": catalog,
		"flash":    utils.GetFlash(c),
	})
}

// ShowBookingForm handles GET /services/:id/booking-form
func (bc *BookingController) ShowBookingForm(c *gin.Context) {
	service, ok := bc.findService(c, c.Param("id"))
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"service": service,
	})
}

// CreateBooking handles POST /bookings - the public booking submission.
// On success it redirects to the confirmation page for the new reference.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	service, ok := bc.findService(c, c.PostForm("service_id"))
	if !ok {
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	address := c.PostForm("address")
	for field, value := range map[string]string{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"address": address,
	} {
		if err := utils.RequireField(field, value); err != nil {
			respondValidationError(c, err)
			return
		}
	}

	bookingDate, err := utils.ParseBookingDate(c.PostForm("date"))
	if err != nil {
		respondValidationError(c, err)
		return
	}
	bookingTime, err := utils.ParseBookingTime(c.PostForm("time"))
	if err != nil {
		respondValidationError(c, err)
		return
	}

	reference, err := services.GenerateBookingReference(bc.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REFERENCE_ERROR",
				"message": "Failed to generate a booking reference",
			},
		})
		return
	}

	booking := models.Booking{
		BookingReference: reference,
		ServiceID:        service.ID,
		CustomerName:     name,
		CustomerEmail:    email,
		CustomerPhone:    phone,
		CustomerAddress:  address,
		BookingDate:      bookingDate,
		BookingTime:      bookingTime,
		Status:           models.BookingStatusPending,
		TotalPrice:       service.Price, // snapshot, not a live join
	}

	if err := bc.db.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create booking",
			},
		})
		return
	}

	// Best-effort confirmation email: log failures, never fail the booking
	booking.Service = *service
	if err := bc.notifier.SendBookingConfirmation(&booking); err != nil {
		log.Printf("warning: confirmation email for booking %s failed: %v", booking.BookingReference, err)
	}

	utils.SetFlash(c, fmt.Sprintf("Booking successful! Your reference number is %s", reference))
	c.Redirect(http.StatusSeeOther, "/bookings/"+reference)
}

// ShowConfirmation handles GET /bookings/:reference
func (bc *BookingController) ShowConfirmation(c *gin.Context) {
	reference := c.Param("reference")

	var booking models.Booking
	err := bc.db.Preload("Service").
		Where("booking_reference = ?", reference).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Booking not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load booking",
			},
		})
		return
	}

	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"booking": booking,
		"date":    booking.BookingDate.Format(utils.BookingDateLayout),
		"flash":   utils.GetFlash(c),
	})
}

// findService resolves a service id from a path or form value. It writes the
// error response itself and reports whether the caller may proceed.
func (bc *BookingController) findService(c *gin.Context, rawID string) (*models.Service, bool) {
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		respondServiceNotFound(c)
		return nil, false
	}

	var service models.Service
	if err := bc.db.First(&service, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceNotFound(c)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to load service",
				},
			})
		}
		return nil, false
	}

	return &service, true
}

func respondServiceNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "Service not found",
		},
	})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": err.Error(),
		},
	})
}

// resolveServiceImageURLs fills in presigned image URLs for services with an
// uploaded catalog image. Failures only cost the image, not the page.
func resolveServiceImageURLs(images services.CatalogImages, catalog []models.Service) {
	if images == nil {
		return
	}
	for i := range catalog {
		if catalog[i].ImageS3Key == nil {
			continue
		}
		url, err := images.ServiceImageURL(*catalog[i].ImageS3Key)
		if err != nil {
			log.Printf("warning: failed to resolve image URL for service %d: %v", catalog[i].ID, err)
			continue
		}
		catalog[i].ImageURL = url
	}
}
