package services

import (
	"fmt"
	"log"

	"github.com/freshnest/freshnest-cleaning-api/models"
	"gorm.io/gorm"
)

// defaultServices is the catalog inserted on first startup
var defaultServices = []models.Service{
	{
		Name:        "Regular Cleaning",
		Description: "Complete home cleaning including dusting, vacuuming, mopping, and bathroom cleaning",
		Price:       89.99,
		Duration:    3,
		Category:    "Regular",
		Image:       "regular-cleaning.jpg",
	},
	{
		Name:        "Deep Cleaning",
		Description: "Intensive cleaning service including detailed cleaning of all areas, inside cabinets, and hard-to-reach places",
		Price:       199.99,
		Duration:    6,
		Category:    "Deep",
		Image:       "deep-cleaning.jpg",
	},
	{
		Name:        "Post-Construction Cleaning",
		Description: "Professional cleaning after construction or renovation work",
		Price:       299.99,
		Duration:    8,
		Category:    "Special",
		Image:       "post-construction.jpg",
	},
	{
		Name:        "Office Cleaning",
		Description: "Commercial cleaning service for offices and workspaces",
		Price:       149.99,
		Duration:    4,
		Category:    "Commercial",
		Image:       "office-cleaning.jpg",
	},
}

// SeedDefaultServices inserts the default catalog when the services table is
// empty. Running it again is a no-op, so repeated startups never duplicate
// the catalog.
func SeedDefaultServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := make([]models.Service, len(defaultServices))
	copy(catalog, defaultServices)
	if err := db.Create(&catalog).Error; err != nil {
		return fmt.Errorf("failed to seed default services: %w", err)
	}

	log.Printf("Seeded %d default services", len(catalog))
	return nil
}
