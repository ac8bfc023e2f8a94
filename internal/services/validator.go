package services

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MaxFileSize is the hard cap for an uploaded resume: 10 MiB.
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrInvalidFileType = fiber.NewError(fiber.StatusBadRequest, "Invalid file type. Only PDF files are supported.")
	ErrInvalidFileExt  = fiber.NewError(fiber.StatusBadRequest, "Only PDF files are supported.")
	ErrFileTooLarge    = fiber.NewError(fiber.StatusRequestEntityTooLarge, "File is too large. Max size is 10MB.")
)

// ValidateResumeUpload gates the pipeline before any byte of the file is
// read: declared media type, filename suffix, then size. It runs before the
// extractor and the AI call so a bad upload never costs an external request.
func ValidateResumeUpload(file *multipart.FileHeader) error {
	if file.Header.Get("Content-Type") != "application/pdf" {
		return ErrInvalidFileType
	}

	if !strings.HasSuffix(file.Filename, ".pdf") {
		return ErrInvalidFileExt
	}

	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}

	return nil
}
