package dto

import (
	"net/http"
	"time"

	"github.com/decorline/quantity-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (CalculationResult for the
	// calculate endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API. For
// calculation failures Error carries the calculator error kind
// (MissingParameter, InvalidInput, UnsupportedMode, DivisionByZero) and
// Details names the offending field.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"InvalidInput"`
	Message   string            `json:"message,omitempty" example:"area: must be a positive number"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewCalculationError creates an ErrorResponse from a calculator error,
// preserving the error kind and offending field.
func NewCalculationError(cerr *model.CalculationError) ErrorResponse {
	resp := ErrorResponse{
		Error:     string(cerr.Kind),
		Message:   cerr.Message,
		Timestamp: time.Now(),
	}
	if cerr.Field != "" {
		resp.Details = map[string]string{"field": cerr.Field}
	}
	return resp
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CalculationStatus returns the HTTP status for a calculation error:
// configuration defects surface as 422 so operators can distinguish bad
// catalog data from user typos, which stay 400. Provenance matters here,
// so a negative configured dimension lands on 422 even though its kind
// is InvalidInput.
func CalculationStatus(cerr *model.CalculationError) int {
	if cerr.ConfigurationDefect() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
