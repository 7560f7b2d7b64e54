package i18n

import "github.com/decorline/quantity-service/internal/domain/model"

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates a product has no stored parameters.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a dependency is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Calculation error translation keys.
const (
	ErrKeyCalcMissingParameter = "error.calc.missing_parameter"
	ErrKeyCalcInvalidInput     = "error.calc.invalid_input"
	ErrKeyCalcUnsupportedMode  = "error.calc.unsupported_mode"
	ErrKeyCalcDivisionByZero   = "error.calc.division_by_zero"
)

// Success message translation keys.
const (
	// SuccessKeyQuantityCalculated indicates a successful quantity calculation.
	SuccessKeyQuantityCalculated = "success.quantity_calculated"
	// SuccessKeyParametersSaved indicates product parameters were saved.
	SuccessKeyParametersSaved = "success.parameters_saved"
)

// CalculationErrorKey maps a calculation error kind to its translation key.
func CalculationErrorKey(kind model.ErrorKind) string {
	switch kind {
	case model.ErrMissingParameter:
		return ErrKeyCalcMissingParameter
	case model.ErrInvalidInput:
		return ErrKeyCalcInvalidInput
	case model.ErrUnsupportedMode:
		return ErrKeyCalcUnsupportedMode
	case model.ErrDivisionByZero:
		return ErrKeyCalcDivisionByZero
	default:
		return ErrKeyInternalError
	}
}
