package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decorline/quantity-service/internal/domain/model"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeInvalidRequest, "mode is required")

	assert.Equal(t, ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "mode is required", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.RequestID)
}

func TestNewCalculationError(t *testing.T) {
	tests := []struct {
		name            string
		cerr            *model.CalculationError
		expectedError   string
		expectedDetails map[string]string
	}{
		{
			name:            "missing parameter carries field detail",
			cerr:            model.NewCalculationError(model.ErrMissingParameter, "package_coverage", "package coverage is required"),
			expectedError:   "MissingParameter",
			expectedDetails: map[string]string{"field": "package_coverage"},
		},
		{
			name:          "unsupported mode has no field",
			cerr:          model.NewCalculationError(model.ErrUnsupportedMode, "", "unrecognized mode"),
			expectedError: "UnsupportedMode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewCalculationError(tt.cerr)

			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.cerr.Message, resp.Message)
			assert.Equal(t, tt.expectedDetails, resp.Details)
		})
	}
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeNotFound, "no parameters stored").WithRequestID("req-42")
	assert.Equal(t, "req-42", resp.RequestID)

	// WithRequestID returns a copy, leaving the original untouched.
	original := NewError(ErrCodeNotFound, "no parameters stored")
	_ = original.WithRequestID("req-43")
	assert.Empty(t, original.RequestID)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnprocessableEntity, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}

func TestCalculationStatus(t *testing.T) {
	tests := []struct {
		name     string
		cerr     *model.CalculationError
		expected int
	}{
		{
			name:     "bad measurement is a user error",
			cerr:     model.NewCalculationError(model.ErrInvalidInput, "area", "area must be a positive number"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "missing parameter is a catalog defect",
			cerr:     model.NewCalculationError(model.ErrMissingParameter, "roll_width", "roll_width is not configured for this mode"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "unsupported mode is a catalog defect",
			cerr:     model.NewCalculationError(model.ErrUnsupportedMode, "mode", "unrecognized calculation mode"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "zero parameter is a catalog defect",
			cerr:     model.NewCalculationError(model.ErrDivisionByZero, "package_coverage", "configured package_coverage is zero"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "negative configured parameter is a catalog defect",
			cerr:     model.NewParameterError(model.ErrInvalidInput, "roll_width", "roll_width must be a positive number"),
			expected: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculationStatus(tt.cerr))
		})
	}
}
