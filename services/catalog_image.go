package services

import (
	"fmt"
	"mime/multipart"

	"github.com/freshnest/freshnest-cleaning-api/utils"
)

// CatalogImages handles upload, retrieval, and deletion of service catalog images
type CatalogImages interface {
	// UploadServiceImage validates and stores a catalog image, returning its storage key
	UploadServiceImage(fileHeader *multipart.FileHeader) (string, error)

	// ServiceImageURL generates a URL for accessing a stored catalog image
	ServiceImageURL(imageKey string) (string, error)

	// DeleteServiceImage removes a catalog image from storage
	DeleteServiceImage(imageKey string) error
}

// StoredCatalogImages implements CatalogImages on top of an ObjectStore
type StoredCatalogImages struct {
	store ObjectStore
}

// NewCatalogImages wires catalog image handling to the given object store
func NewCatalogImages(store ObjectStore) *StoredCatalogImages {
	return &StoredCatalogImages{store: store}
}

// UploadServiceImage validates and stores a catalog image
func (s *StoredCatalogImages) UploadServiceImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.store.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload catalog image: %w", err)
	}
	return key, nil
}

// ServiceImageURL generates a presigned URL for a stored catalog image
func (s *StoredCatalogImages) ServiceImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.store.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate catalog image URL: %w", err)
	}
	return url, nil
}

// DeleteServiceImage removes a catalog image from storage
func (s *StoredCatalogImages) DeleteServiceImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.store.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete catalog image: %w", err)
	}
	return nil
}
