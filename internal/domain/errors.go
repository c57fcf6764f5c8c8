package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors separating the distinct failure classes of the pipeline.
// ErrDrugNotFound (the drug is not in the catalog) is deliberately distinct
// from a no-data RecommendationResult (the drug is known but the profile
// lacks genotype data for its gene).
var (
	ErrDrugNotFound     = errors.New("drug not found in guideline catalog")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnreadableSource = errors.New("source file could not be read")
	ErrGeneNotInCatalog = errors.New("gene not present in rule catalog")
)

// APIError is a standardized error response body.
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeUnreadableFile  = "UNREADABLE_FILE"
	ErrCodeDrugNotFound    = "DRUG_NOT_FOUND"
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodeRateLimit       = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal        = "INTERNAL_SERVER_ERROR"
	ErrCodeValidation      = "VALIDATION_ERROR"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewAPIError creates a new APIError with timestamp
func NewAPIError(code, message, details, requestID string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
