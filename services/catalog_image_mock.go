package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"

	"github.com/freshnest/freshnest-cleaning-api/utils"
)

// MockCatalogImages is an in-memory CatalogImages implementation for testing
type MockCatalogImages struct {
	uploadedImages map[string][]byte // map of image key to file content
	mu             sync.RWMutex
}

// NewMockCatalogImages creates a new mock catalog image store
func NewMockCatalogImages() *MockCatalogImages {
	return &MockCatalogImages{
		uploadedImages: make(map[string][]byte),
	}
}

// UploadServiceImage simulates validating and storing a catalog image
func (m *MockCatalogImages) UploadServiceImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	imageKey := fmt.Sprintf("services/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.uploadedImages[imageKey] = content
	m.mu.Unlock()

	return imageKey, nil
}

// ServiceImageURL returns a deterministic fake URL for a stored key
func (m *MockCatalogImages) ServiceImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.uploadedImages[imageKey]; !ok {
		return "", fmt.Errorf("image not found: %s", imageKey)
	}
	return "https://mock-bucket.example.com/" + imageKey, nil
}

// DeleteServiceImage removes an image from the mock storage
func (m *MockCatalogImages) DeleteServiceImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedImages, imageKey)
	m.mu.Unlock()
	return nil
}

// HasImage reports whether a key exists in the mock storage
func (m *MockCatalogImages) HasImage(imageKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.uploadedImages[imageKey]
	return ok
}
