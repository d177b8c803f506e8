package services

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/freshnest/freshnest-cleaning-api/models"
	"gorm.io/gorm"
)

const (
	// ReferenceLength is the number of characters in a booking reference
	ReferenceLength = 8
	// ReferenceCharset is the alphabet booking references are drawn from
	ReferenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// maxReferenceAttempts caps collision retries before giving up
	maxReferenceAttempts = 100
)

// ErrReferenceExhausted is returned when no unique booking reference could be
// generated within the retry cap
var ErrReferenceExhausted = errors.New("exhausted attempts to generate a unique booking reference")

// randomReference produces one candidate reference code
func randomReference() string {
	code := make([]byte, ReferenceLength)
	for i := range code {
		code[i] = ReferenceCharset[rand.IntN(len(ReferenceCharset))]
	}
	return string(code)
}

// GenerateBookingReference produces a booking reference that does not collide
// with any persisted booking. The unique index on booking_reference remains
// the authority under concurrent writers; this check keeps collisions from
// ever reaching the insert in practice.
func GenerateBookingReference(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference := randomReference()

		var count int64
		if err := db.Model(&models.Booking{}).
			Where("booking_reference = ?", reference).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}
		if count == 0 {
			return reference, nil
		}
	}
	return "", ErrReferenceExhausted
}
