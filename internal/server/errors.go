// Package server provides the HTTP JSON API that stands in for the
// CareerBridge user interface.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/careerbridge/internal/gateway"
	"github.com/jonathan/careerbridge/internal/interview"
	"github.com/jonathan/careerbridge/internal/tailor"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorage indicates the local store could not be read or written
type ErrStorage struct {
	Cause error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage error: %v", e.Cause)
}

func (e *ErrStorage) Unwrap() error { return e.Cause }

// ErrNotFound indicates a resource that does not exist
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Anything unclassified came out of the provider path and maps to 502.
func HTTPStatus(err error) int {
	var (
		validationErr   *ErrValidation
		storageErr      *ErrStorage
		notFoundErr     *ErrNotFound
		invalidInputErr *tailor.ErrInvalidInput
		rejectedErr     *interview.ErrSubmitRejected
		analysisErr     *gateway.ErrCVAnalysisFailed
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidInputErr):
		return http.StatusBadRequest
	case errors.As(err, &rejectedErr), errors.Is(err, tailor.ErrSuperseded):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError
	case errors.As(err, &analysisErr):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
