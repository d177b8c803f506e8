package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxImageSize is 5MB in bytes
	MaxImageSize = 5 * 1024 * 1024
	// AllowedImageFormat is PNG
	AllowedImageFormat = ".png"
)

// ImageFileError represents a catalog image validation error
type ImageFileError struct {
	Code    string
	Message string
}

func (e *ImageFileError) Error() string {
	return e.Message
}

// ValidateImageFile validates an uploaded catalog image's format and size
func ValidateImageFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxImageSize {
		return &ImageFileError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("Image exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != AllowedImageFormat {
		return &ImageFileError{
			Code:    "INVALID_FILE_FORMAT",
			Message: fmt.Sprintf("Only %s images are allowed", AllowedImageFormat),
		}
	}

	return nil
}
