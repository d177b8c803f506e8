package models

import (
	"time"
)

// Service represents a cleaning service offering in the catalog
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Duration    int       `gorm:"not null;check:duration > 0" json:"duration"` // in hours
	Category    string    `gorm:"not null" json:"category"`
	Image       string    `gorm:"default:'default.jpg'" json:"image"`
	ImageS3Key  *string   `json:"image_s3_key,omitempty"`       // nullable, S3 key for uploaded catalog image
	ImageURL    string    `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for image
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
