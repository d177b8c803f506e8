package models

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation of a service for a date and time
type Booking struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	BookingReference string        `gorm:"size:10;uniqueIndex;not null" json:"booking_reference"`
	ServiceID        uint          `gorm:"not null;index" json:"service_id"` // foreign key to services table
	Service          Service       `gorm:"foreignKey:ServiceID" json:"service"`
	CustomerName     string        `gorm:"not null" json:"customer_name"`
	CustomerEmail    string        `gorm:"not null" json:"customer_email"`
	CustomerPhone    string        `gorm:"not null" json:"customer_phone"`
	CustomerAddress  string        `gorm:"type:text;not null" json:"customer_address"`
	BookingDate      time.Time     `gorm:"type:date;not null" json:"booking_date"`
	BookingTime      string        `gorm:"size:5;not null" json:"booking_time"` // "HH:MM", validated on input
	Status           BookingStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	TotalPrice       float64       `gorm:"type:decimal(10,2);not null" json:"total_price"` // snapshot of the service price at booking time
	CreatedAt        time.Time     `json:"created_at"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsPending reports whether the booking is still awaiting review
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed reports whether the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Confirm moves the booking to the confirmed status
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}

// Cancel moves the booking to the cancelled status
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}
