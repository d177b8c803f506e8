package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/freshnest/freshnest-cleaning-api/models"
	"github.com/freshnest/freshnest-cleaning-api/services"
	"github.com/freshnest/freshnest-cleaning-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController serves the admin dashboard: booking oversight, status
// transitions, and catalog management. The admin surface carries no
// authentication in this design.
type AdminController struct {
	db     *gorm.DB
	images services.CatalogImages
}

// NewAdminController wires the admin handlers to their dependencies
func NewAdminController(db *gorm.DB, images services.CatalogImages) *AdminController {
	return &AdminController{
		db:     db,
		images: images,
	}
}

// Dashboard handles GET /admin/bookings - all bookings, newest first
func (ac *AdminController) Dashboard(c *gin.Context) {
	var bookings []models.Booking
	err := ac.db.Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load bookings",
			},
		})
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"bookings": bookings,
	})
}

// ListServices handles GET /admin/services - the catalog management view
func (ac *AdminController) ListServices(c *gin.Context) {
	var catalog []models.Service
	if err := ac.db.Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load services",
			},
		})
		return
	}

	resolveServiceImageURLs(ac.images, catalog)

	c.HTML(http.StatusOK, "admin_services.html", gin.H{
		"services": catalog,
		"flash":    utils.GetFlash(c),
	})
}

// NewServiceForm handles GET /admin/services/new
func (ac *AdminController) NewServiceForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_service_form.html", gin.H{})
}

// CreateService handles POST /admin/services. The form may carry an optional
// PNG upload that becomes the service's catalog image.
func (ac *AdminController) CreateService(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	for field, value := range map[string]string{
		"name":        name,
		"description": description,
	} {
		if err := utils.RequireField(field, value); err != nil {
			respondValidationError(c, err)
			return
		}
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		respondValidationError(c, &utils.ValidationError{Field: "price", Message: "price must be a non-negative number"})
		return
	}

	duration, err := strconv.Atoi(c.PostForm("duration"))
	if err != nil || duration <= 0 {
		respondValidationError(c, &utils.ValidationError{Field: "duration", Message: "duration must be a positive number of hours"})
		return
	}

	service := models.Service{
		Name:        name,
		Description: description,
		Price:       price,
		Duration:    duration,
		Category:    c.PostForm("category"),
		Image:       c.DefaultPostForm("image", "default.jpg"),
	}

	// Optional catalog image upload
	if fileHeader, err := c.FormFile("image_file"); err == nil {
		if ac.images == nil {
			respondValidationError(c, &utils.ValidationError{Field: "image_file", Message: "image uploads are not configured"})
			return
		}
		key, err := ac.images.UploadServiceImage(fileHeader)
		if err != nil {
			respondValidationError(c, err)
			return
		}
		service.ImageS3Key = &key
	}

	if err := ac.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create service",
			},
		})
		return
	}

	utils.SetFlash(c, "Service added successfully!")
	c.Redirect(http.StatusSeeOther, "/admin/services")
}

// ConfirmBooking handles POST /admin/bookings/:id/confirm
func (ac *AdminController) ConfirmBooking(c *gin.Context) {
	booking, ok := ac.findBooking(c)
	if !ok {
		return
	}

	booking.Confirm()
	if err := ac.db.Save(booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update booking",
			},
		})
		return
	}

	log.Printf("Booking %s confirmed", booking.BookingReference)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking confirmed successfully",
	})
}

// CancelBooking handles POST /admin/bookings/:id/cancel
func (ac *AdminController) CancelBooking(c *gin.Context) {
	booking, ok := ac.findBooking(c)
	if !ok {
		return
	}

	booking.Cancel()
	if err := ac.db.Save(booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update booking",
			},
		})
		return
	}

	log.Printf("Booking %s cancelled", booking.BookingReference)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

// GetBooking handles GET /admin/bookings/:id - one booking as structured data
func (ac *AdminController) GetBooking(c *gin.Context) {
	booking, ok := ac.findBooking(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                booking.ID,
		"booking_reference": booking.BookingReference,
		"customer_name":     booking.CustomerName,
		"customer_email":    booking.CustomerEmail,
		"customer_phone":    booking.CustomerPhone,
		"customer_address":  booking.CustomerAddress,
		"service_name":      booking.Service.Name,
		"booking_date":      booking.BookingDate.Format(utils.BookingDateLayout),
		"booking_time":      booking.BookingTime,
		"status":            booking.Status,
		"total_price":       booking.TotalPrice,
	})
}

// findBooking resolves the :id path parameter to a booking with its service
// loaded. It writes the error response itself and reports whether the caller
// may proceed.
func (ac *AdminController) findBooking(c *gin.Context) (*models.Booking, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBookingNotFound(c)
		return nil, false
	}

	var booking models.Booking
	if err := ac.db.Preload("Service").First(&booking, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondBookingNotFound(c)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to load booking",
				},
			})
		}
		return nil, false
	}

	return &booking, true
}

func respondBookingNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "Booking not found",
		},
	})
}
