// Package model defines the core domain entities for the quantity service.
package model

import "fmt"

// Mode identifies which conversion formula applies to a product.
//
// @Description Calculation mode determining the conversion formula
type Mode string

const (
	// ModeRoll converts wall area into rolls (wallpaper).
	ModeRoll Mode = "roll"
	// ModePackage converts floor area into packages (flooring).
	ModePackage Mode = "package"
	// ModeBranch converts wall length into branches (skirting board).
	ModeBranch Mode = "branch"
	// ModeSquareMeter sells raw area; no discrete unit.
	ModeSquareMeter Mode = "square_meter"
	// ModeTile converts area into tiles.
	ModeTile Mode = "tile"
	// ModeLength sells raw linear meters; no discrete unit.
	ModeLength Mode = "length"
)

// Valid reports whether the mode is one of the recognized values.
func (m Mode) Valid() bool {
	switch m {
	case ModeRoll, ModePackage, ModeBranch, ModeSquareMeter, ModeTile, ModeLength:
		return true
	}
	return false
}

// Discrete reports whether the mode produces an integer purchase quantity.
func (m Mode) Discrete() bool {
	switch m {
	case ModeRoll, ModePackage, ModeBranch, ModeTile:
		return true
	}
	return false
}

// OneDimensional reports whether the mode measures length rather than area.
func (m Mode) OneDimensional() bool {
	return m == ModeBranch || m == ModeLength
}

// Unit returns the display unit label for quantities in this mode.
func (m Mode) Unit() string {
	switch m {
	case ModeRoll:
		return "rolls"
	case ModePackage:
		return "packages"
	case ModeBranch:
		return "branches"
	case ModeTile:
		return "tiles"
	case ModeSquareMeter:
		return "m²"
	case ModeLength:
		return "m"
	}
	return ""
}

// CalculatorParameters describes a product's physical packaging. Instances
// come from catalog data and are never mutated by the calculator.
//
// Optional fields use pointers so an absent dimension is distinguishable from
// an explicit zero; a zero in a configured dimension is a catalog defect and
// is reported as DivisionByZero, never silently defaulted.
//
// @Description Product geometric parameters for quantity calculation
type CalculatorParameters struct {
	// Mode selects the conversion formula.
	Mode Mode `json:"mode" bson:"mode" example:"roll"`
	// RollWidth is the width of one roll in meters (roll mode).
	RollWidth *float64 `json:"roll_width,omitempty" bson:"roll_width,omitempty" example:"1.06"`
	// RollLength is the length of one roll in meters (roll mode).
	RollLength *float64 `json:"roll_length,omitempty" bson:"roll_length,omitempty" example:"10"`
	// RollFixedAllowance, when set, replaces the percentage waste buffer for
	// roll mode with a fixed allowance in linear meters added before dividing.
	RollFixedAllowance *float64 `json:"roll_fixed_allowance,omitempty" bson:"roll_fixed_allowance,omitempty" example:"1.5"`
	// PackageCoverage is the area in square meters covered by one package.
	PackageCoverage *float64 `json:"package_coverage,omitempty" bson:"package_coverage,omitempty" example:"2.2"`
	// BranchLength is the length in meters covered by one branch.
	BranchLength *float64 `json:"branch_length,omitempty" bson:"branch_length,omitempty" example:"2.5"`
	// TileArea is the area of one tile in square meters. When absent it is
	// derived from TileWidth × TileLength.
	TileArea *float64 `json:"tile_area,omitempty" bson:"tile_area,omitempty" example:"0.09"`
	// TileWidth is the width of one tile in meters.
	TileWidth *float64 `json:"tile_width,omitempty" bson:"tile_width,omitempty" example:"0.3"`
	// TileLength is the length of one tile in meters.
	TileLength *float64 `json:"tile_length,omitempty" bson:"tile_length,omitempty" example:"0.3"`
	// UnitPrice is the price per purchasable unit (per linear meter for
	// length mode). Optional; without it TotalCost is omitted.
	UnitPrice *float64 `json:"unit_price,omitempty" bson:"unit_price,omitempty" example:"50000"`
	// WastePercentage overrides the default 10% cutting-loss buffer.
	WastePercentage *float64 `json:"waste_percentage,omitempty" bson:"waste_percentage,omitempty" example:"0.1"`
}

// Measurement is the user-supplied dimension input. Two-dimensional modes
// accept either a length/width pair or a pre-computed area (or both, which
// must agree); one-dimensional modes use Length alone.
//
// @Description User-supplied measurement
type Measurement struct {
	// Length in meters.
	Length *float64 `json:"length,omitempty" example:"3"`
	// Width in meters.
	Width *float64 `json:"width,omitempty" example:"2.5"`
	// Area in square meters, as an alternative to length × width.
	Area *float64 `json:"area,omitempty" example:"7.5"`
}

// CalculationResult is the immutable outcome of a calculation.
//
// @Description Quantity calculation result
type CalculationResult struct {
	// Quantity is the number of purchasable units. Integer-valued for
	// discrete modes, real-valued for square_meter and length.
	Quantity float64 `json:"quantity" example:"13"`
	// Unit is the display label for Quantity.
	Unit string `json:"unit" example:"packages"`
	// CoveredMeasure is the area or length the purchased quantity actually
	// provides; for discrete modes it meets or exceeds the requested measure.
	CoveredMeasure float64 `json:"covered_measure" example:"28.6"`
	// TotalCost is Quantity × UnitPrice when a price is known.
	TotalCost *float64 `json:"total_cost,omitempty" example:"650000"`
}

// ErrorKind classifies a calculation failure.
type ErrorKind string

const (
	// ErrMissingParameter means a dimension required by the mode is absent.
	ErrMissingParameter ErrorKind = "MissingParameter"
	// ErrInvalidInput means a supplied measurement is zero, negative, or not
	// a finite number.
	ErrInvalidInput ErrorKind = "InvalidInput"
	// ErrUnsupportedMode means the mode is outside the recognized set.
	ErrUnsupportedMode ErrorKind = "UnsupportedMode"
	// ErrDivisionByZero means a configured dimension is present but zero.
	ErrDivisionByZero ErrorKind = "DivisionByZero"
)

// ConfigurationDefect reports whether the failure indicates bad catalog data
// requiring operator correction, as opposed to a user-input mistake.
func (k ErrorKind) ConfigurationDefect() bool {
	return k == ErrMissingParameter || k == ErrUnsupportedMode || k == ErrDivisionByZero
}

// CalculationError is the tagged error variant of a calculation. Expected
// invalid-input cases are returned as values, never panics, so callers can
// render inline validation messages.
type CalculationError struct {
	Kind    ErrorKind `json:"errorKind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`

	// parameter marks errors raised by a configured product value rather
	// than a user measurement. It does not appear on the wire; the kind
	// still classifies the value problem for clients.
	parameter bool
}

// ConfigurationDefect reports whether the error points at catalog data. Kinds
// that are defects by definition always qualify; an InvalidInput raised for a
// configured parameter (a negative roll width, for example) qualifies too,
// since the user cannot fix it.
func (e *CalculationError) ConfigurationDefect() bool {
	return e.parameter || e.Kind.ConfigurationDefect()
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewCalculationError builds a CalculationError for the given kind and field.
func NewCalculationError(kind ErrorKind, field, message string) *CalculationError {
	return &CalculationError{Kind: kind, Field: field, Message: message}
}

// NewParameterError builds a CalculationError for a defective configured
// product value. It routes to the configuration-defect path regardless of
// the kind carried on the wire.
func NewParameterError(kind ErrorKind, field, message string) *CalculationError {
	return &CalculationError{Kind: kind, Field: field, Message: message, parameter: true}
}
