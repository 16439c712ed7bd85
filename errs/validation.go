package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload Validation Errors
var (
	ErrWrongContentType  = errors.New("wrong content type")
	ErrUnreadableArchive = errors.New("unreadable archive")
	ErrMissingDirectory  = errors.New("missing directory")
	ErrNotADirectory     = errors.New("not a directory")
	ErrNotAnImage        = errors.New("not an image")
)

func NewWrongContentTypeError(got, want string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrWrongContentType,
		Details:    fmt.Sprintf("Expected content type %s, got %s", want, got),
		Field:      "content_type",
	}
}

func NewUnreadableArchiveError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnreadableArchive,
		Details:    "Archive could not be opened as a zip file",
		Cause:      cause,
	}
}

func NewMissingDirectoryError(dir string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingDirectory,
		Details:    fmt.Sprintf("Archive is missing the %s directory", dir),
	}
}

func NewNotADirectoryError(dir string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNotADirectory,
		Details:    fmt.Sprintf("Archive entry %s is a file, not a directory", dir),
	}
}

func NewNotAnImageError(slot, contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNotAnImage,
		Details:    fmt.Sprintf("%s provided is not an image (content type %s)", slot, contentType),
		Field:      slot,
	}
}

// Upload Validation Error Type Checkers
func IsWrongContentTypeError(err error) bool {
	return errors.Is(err, ErrWrongContentType)
}

func IsMissingDirectoryError(err error) bool {
	return errors.Is(err, ErrMissingDirectory)
}

func IsNotADirectoryError(err error) bool {
	return errors.Is(err, ErrNotADirectory)
}

func IsNotAnImageError(err error) bool {
	return errors.Is(err, ErrNotAnImage)
}

// IsValidationError reports whether err belongs to the upload validation
// taxonomy (all client-caused).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrWrongContentType) ||
		errors.Is(err, ErrUnreadableArchive) ||
		errors.Is(err, ErrMissingDirectory) ||
		errors.Is(err, ErrNotADirectory) ||
		errors.Is(err, ErrNotAnImage)
}
