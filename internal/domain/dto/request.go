// Package dto defines Data Transfer Objects for HTTP request and response
// handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/decorline/quantity-service/internal/domain/model"
)

// CalculateRequest is the JSON body for the calculation endpoint. Parameters
// are supplied inline; the top-level mode wins over a mode inside parameters.
//
// @Description Request to compute a purchase quantity from a measurement
// @Example {"mode": "package", "parameters": {"package_coverage": 2.2}, "measurement": {"area": 25}}
type CalculateRequest struct {
	// Mode selects the conversion formula.
	Mode string `json:"mode" binding:"required" example:"package"`
	// Parameters carries the product's geometric configuration.
	Parameters model.CalculatorParameters `json:"parameters"`
	// Measurement is the user-supplied dimension input.
	Measurement model.Measurement `json:"measurement" binding:"required"`
	// UnitPrice optionally overrides the price carried in Parameters.
	UnitPrice *float64 `json:"unit_price,omitempty" example:"50000"`
} // @name CalculateRequest

// CalculatorParameters merges the request fields into canonical calculator
// parameters for the core.
func (r *CalculateRequest) CalculatorParameters() model.CalculatorParameters {
	params := r.Parameters
	params.Mode = model.Mode(r.Mode)
	if r.UnitPrice != nil {
		params.UnitPrice = r.UnitPrice
	}
	return params
}

// CalculateProductRequest is the JSON body for catalog-backed calculation:
// parameters are resolved from the stored product configuration by SKU.
//
// @Description Request to compute a quantity using stored product parameters
// @Example {"sku": "WP-1093", "measurement": {"length": 3, "width": 2.5}}
type CalculateProductRequest struct {
	// SKU identifies the catalog product.
	SKU string `json:"sku" binding:"required" example:"WP-1093"`
	// Measurement is the user-supplied dimension input.
	Measurement model.Measurement `json:"measurement" binding:"required"`
	// UnitPrice optionally overrides the stored product price.
	UnitPrice *float64 `json:"unit_price,omitempty" example:"50000"`
} // @name CalculateProductRequest

// UpsertProductParametersRequest is the JSON body for storing calculator
// parameters for a product. Configurations arrive in one of two shapes:
// canonical parameters, or a raw attribute map as exported by upstream
// catalogs, which is normalized before storage.
type UpsertProductParametersRequest struct {
	// Parameters is the canonical product configuration to store.
	Parameters model.CalculatorParameters `json:"parameters"`
	// Mode is the raw mode label accompanying Attributes. Alias spellings
	// such as "pkg" or Persian labels are accepted.
	Mode string `json:"mode,omitempty" example:"pkg"`
	// Attributes is a raw product-attribute map. When present it takes the
	// place of Parameters; keys and numeric values are normalized from
	// their catalog-export spellings.
	Attributes map[string]string `json:"attributes,omitempty"`
	// UpdatedBy is the identifier of who changed the configuration.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpsertProductParametersRequest

// RawMode returns the mode label for the attribute-map shape: the top-level
// label when given, otherwise the one inside Parameters.
func (r *UpsertProductParametersRequest) RawMode() string {
	if r.Mode != "" {
		return r.Mode
	}
	return string(r.Parameters.Mode)
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingMode is returned when the request carries no mode.
	ErrMissingMode = &ValidationError{Field: "mode", Message: "calculation mode is required"}
	// ErrMissingSKU is returned when the request carries no product SKU.
	ErrMissingSKU = &ValidationError{Field: "sku", Message: "product sku is required"}
	// ErrMissingParameters is returned when no parameters object is supplied.
	ErrMissingParameters = &ValidationError{Field: "parameters", Message: "calculator parameters are required"}
)

// Validate performs custom validation on the request.
func (r *CalculateRequest) Validate() error {
	if r.Mode == "" {
		return ErrMissingMode
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *CalculateProductRequest) Validate() error {
	if r.SKU == "" {
		return ErrMissingSKU
	}
	return nil
}

// Validate performs custom validation on the request. Attribute-map bodies
// defer mode validation until after alias normalization.
func (r *UpsertProductParametersRequest) Validate() error {
	if len(r.Attributes) > 0 {
		if r.RawMode() == "" {
			return ErrMissingMode
		}
		return nil
	}
	if r.Parameters.Mode == "" {
		return ErrMissingParameters
	}
	if !r.Parameters.Mode.Valid() {
		return &ValidationError{Field: "parameters.mode", Message: "unrecognized calculation mode"}
	}
	return nil
}
