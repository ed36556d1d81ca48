// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic errors
	CodeVenueNotFound      ErrorCode = "VENUE_NOT_FOUND"
	CodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	CodeDietaryUnconfirmed ErrorCode = "DIETARY_UNCONFIRMED"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeValidationFailed, CodeDietaryUnconfirmed:
		return http.StatusUnprocessableEntity
	case CodeNotFound, CodeVenueNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable, CodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewTooManyRequestsError creates a rate limit error
func NewTooManyRequestsError(details string) *AppError {
	return NewAppError(CodeTooManyRequests, "Too many requests", details)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service string, cause error) *AppError {
	return NewAppError(
		CodeExternalServiceError,
		"External service error",
		fmt.Sprintf("Failed to communicate with %s", service),
	).WithCause(cause)
}

// Business domain specific errors

// NewVenueNotFoundError creates a venue not found error
func NewVenueNotFoundError(venueID string) *AppError {
	return NewAppError(
		CodeVenueNotFound,
		"Venue not found",
		fmt.Sprintf("Venue with ID %s does not exist", venueID),
	).WithMetadata("venue_id", venueID)
}

// NewCatalogUnavailableError creates a catalog unavailable error
func NewCatalogUnavailableError(venueID string, cause error) *AppError {
	return NewAppError(
		CodeCatalogUnavailable,
		"Menu catalog unavailable",
		fmt.Sprintf("Could not load the menu for venue %s", venueID),
	).WithMetadata("venue_id", venueID).WithCause(cause)
}

// NewDietaryUnconfirmedError creates an error for dietary answers that could
// not be understood. Allergy handling fails closed: the guest must restate
// the values rather than have them silently dropped.
func NewDietaryUnconfirmedError(values []string) *AppError {
	return NewAppError(
		CodeDietaryUnconfirmed,
		"Dietary answer not understood",
		fmt.Sprintf("Please confirm these dietary restrictions: %s", strings.Join(values, ", ")),
	).WithMetadata("unconfirmed_values", values)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
