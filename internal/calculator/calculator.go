// Package calculator implements the unit-conversion engine that translates a
// physical measurement (wall area, floor area, wall length) into a
// purchasable quantity given product geometric parameters.
//
// Calculate is a pure function: no I/O, no shared mutable state, safe to call
// concurrently without synchronization. All expected failures are returned as
// *model.CalculationError values; it never panics on input-shape problems.
package calculator

import (
	"math"

	"github.com/decorline/quantity-service/internal/domain/model"
)

const (
	// DefaultWastePercentage is the cutting-loss buffer applied to the raw
	// quantity before rounding when the product does not override it.
	DefaultWastePercentage = 0.10

	// areaTolerance bounds the allowed disagreement between a supplied area
	// and length × width when both representations are given.
	areaTolerance = 1e-6
)

// Calculate maps product parameters and a user measurement to a purchase
// quantity. Discrete modes (roll, package, tile, branch) round up to whole
// units; under-ordering physical material is the unacceptable failure mode,
// so rounding is always ceiling, never nearest.
func Calculate(p model.CalculatorParameters, m model.Measurement) (model.CalculationResult, *model.CalculationError) {
	if !p.Mode.Valid() {
		return model.CalculationResult{}, model.NewCalculationError(
			model.ErrUnsupportedMode, "mode", "unrecognized calculation mode "+string(p.Mode))
	}

	waste, cerr := wasteFactor(p)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	switch p.Mode {
	case model.ModeRoll:
		return calculateRoll(p, m, waste)
	case model.ModePackage:
		return calculatePackage(p, m, waste)
	case model.ModeTile:
		return calculateTile(p, m, waste)
	case model.ModeBranch:
		return calculateBranch(p, m, waste)
	case model.ModeSquareMeter:
		return calculateSquareMeter(p, m)
	default: // model.ModeLength
		return calculateLength(p, m)
	}
}

// calculateRoll converts wall area into rolls. The deployment waste policy is
// the percentage multiplier; a product may instead carry a fixed allowance in
// linear meters (RollFixedAllowance), which is added to the needed linear
// meters before dividing by the roll length.
func calculateRoll(p model.CalculatorParameters, m model.Measurement, waste float64) (model.CalculationResult, *model.CalculationError) {
	area, cerr := resolveArea(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	width, cerr := requiredParam(p.RollWidth, "roll_width")
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}
	length, cerr := requiredParam(p.RollLength, "roll_length")
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	rollArea := width * length
	var quantity float64
	if p.RollFixedAllowance != nil {
		neededMeters := area/width + *p.RollFixedAllowance
		quantity = ceilUnits(neededMeters / length)
	} else {
		quantity = ceilUnits(area / rollArea * (1 + waste))
	}

	return buildDiscreteResult(p, quantity, rollArea), nil
}

// calculatePackage converts floor area into packages.
func calculatePackage(p model.CalculatorParameters, m model.Measurement, waste float64) (model.CalculationResult, *model.CalculationError) {
	area, cerr := resolveArea(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	coverage, cerr := requiredParam(p.PackageCoverage, "package_coverage")
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	quantity := ceilUnits(area / coverage * (1 + waste))
	return buildDiscreteResult(p, quantity, coverage), nil
}

// calculateTile converts area into tiles. Tile area may be configured
// directly or derived from tile width × length.
func calculateTile(p model.CalculatorParameters, m model.Measurement, waste float64) (model.CalculationResult, *model.CalculationError) {
	area, cerr := resolveArea(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	tileArea, cerr := resolveTileArea(p)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	quantity := ceilUnits(area / tileArea * (1 + waste))
	return buildDiscreteResult(p, quantity, tileArea), nil
}

// calculateBranch converts wall length into branches.
func calculateBranch(p model.CalculatorParameters, m model.Measurement, waste float64) (model.CalculationResult, *model.CalculationError) {
	length, cerr := resolveLength(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	branchLength, cerr := requiredParam(p.BranchLength, "branch_length")
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	quantity := ceilUnits(length / branchLength * (1 + waste))
	return buildDiscreteResult(p, quantity, branchLength), nil
}

// calculateSquareMeter sells raw area; quantity is the area itself.
func calculateSquareMeter(p model.CalculatorParameters, m model.Measurement) (model.CalculationResult, *model.CalculationError) {
	area, cerr := resolveArea(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	result := model.CalculationResult{
		Quantity:       area,
		Unit:           p.Mode.Unit(),
		CoveredMeasure: area,
	}
	applyCost(&result, p.UnitPrice)
	return result, nil
}

// calculateLength sells raw linear meters. A price is required for this mode:
// either the product's own unit price or one supplied by the caller.
func calculateLength(p model.CalculatorParameters, m model.Measurement) (model.CalculationResult, *model.CalculationError) {
	length, cerr := resolveLength(m)
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	price, cerr := requiredParam(p.UnitPrice, "unit_price")
	if cerr != nil {
		return model.CalculationResult{}, cerr
	}

	result := model.CalculationResult{
		Quantity:       length,
		Unit:           p.Mode.Unit(),
		CoveredMeasure: length,
	}
	applyCost(&result, &price)
	return result, nil
}

// buildDiscreteResult assembles the result for whole-unit modes. The covered
// measure is quantity × unit coverage, the material actually paid for, which
// meets or exceeds the requested measure due to ceiling rounding.
func buildDiscreteResult(p model.CalculatorParameters, quantity, unitCoverage float64) model.CalculationResult {
	result := model.CalculationResult{
		Quantity:       quantity,
		Unit:           p.Mode.Unit(),
		CoveredMeasure: quantity * unitCoverage,
	}
	applyCost(&result, p.UnitPrice)
	return result
}

// applyCost fills TotalCost when a unit price is known.
func applyCost(result *model.CalculationResult, price *float64) {
	if price != nil && isFinite(*price) && *price >= 0 {
		cost := result.Quantity * *price
		result.TotalCost = &cost
	}
}

// wasteFactor returns the waste buffer for the product, defaulting to 10%.
func wasteFactor(p model.CalculatorParameters) (float64, *model.CalculationError) {
	if p.WastePercentage == nil {
		return DefaultWastePercentage, nil
	}
	w := *p.WastePercentage
	if !isFinite(w) || w < 0 {
		return 0, model.NewParameterError(
			model.ErrInvalidInput, "waste_percentage", "waste percentage must be a non-negative number")
	}
	return w, nil
}

// resolveArea derives the target area from a measurement. A pre-computed
// area and a length/width pair are both accepted; when both are supplied
// they must agree.
func resolveArea(m model.Measurement) (float64, *model.CalculationError) {
	var fromPair float64
	havePair := m.Length != nil && m.Width != nil
	if havePair {
		length, cerr := positiveInput(m.Length, "length")
		if cerr != nil {
			return 0, cerr
		}
		width, cerr := positiveInput(m.Width, "width")
		if cerr != nil {
			return 0, cerr
		}
		fromPair = length * width
	}

	if m.Area != nil {
		area, cerr := positiveInput(m.Area, "area")
		if cerr != nil {
			return 0, cerr
		}
		if havePair && math.Abs(area-fromPair) > areaTolerance*math.Max(1, area) {
			return 0, model.NewCalculationError(
				model.ErrInvalidInput, "area", "area disagrees with length × width")
		}
		return area, nil
	}

	if havePair {
		return fromPair, nil
	}

	return 0, model.NewCalculationError(
		model.ErrInvalidInput, "area", "either area or both length and width are required")
}

// resolveLength derives the target length for one-dimensional modes.
func resolveLength(m model.Measurement) (float64, *model.CalculationError) {
	if m.Length == nil {
		return 0, model.NewCalculationError(model.ErrInvalidInput, "length", "length is required")
	}
	return positiveInput(m.Length, "length")
}

// resolveTileArea returns the area of one tile, from TileArea or the tile
// dimensions.
func resolveTileArea(p model.CalculatorParameters) (float64, *model.CalculationError) {
	if p.TileArea != nil {
		return requiredParam(p.TileArea, "tile_area")
	}
	if p.TileWidth != nil && p.TileLength != nil {
		width, cerr := requiredParam(p.TileWidth, "tile_width")
		if cerr != nil {
			return 0, cerr
		}
		length, cerr := requiredParam(p.TileLength, "tile_length")
		if cerr != nil {
			return 0, cerr
		}
		return width * length, nil
	}
	return 0, model.NewParameterError(
		model.ErrMissingParameter, "tile_area", "tile_area or tile_width and tile_length must be configured")
}

// requiredParam validates a configured product dimension. Absence is a
// MissingParameter defect, present-but-zero is DivisionByZero, and negative
// or non-finite values are invalid parameter values. All three indicate
// catalog data needing operator correction, never a user mistake.
func requiredParam(v *float64, field string) (float64, *model.CalculationError) {
	if v == nil {
		return 0, model.NewParameterError(model.ErrMissingParameter, field, field+" is not configured for this mode")
	}
	if !isFinite(*v) || *v < 0 {
		return 0, model.NewParameterError(model.ErrInvalidInput, field, field+" must be a positive number")
	}
	if *v == 0 {
		return 0, model.NewParameterError(model.ErrDivisionByZero, field, "configured "+field+" is zero")
	}
	return *v, nil
}

// positiveInput validates a user-supplied measurement value. Zero and
// negative are invalid input, not a valid zero-quantity result.
func positiveInput(v *float64, field string) (float64, *model.CalculationError) {
	if v == nil {
		return 0, model.NewCalculationError(model.ErrInvalidInput, field, field+" is required")
	}
	if !isFinite(*v) || *v <= 0 {
		return 0, model.NewCalculationError(model.ErrInvalidInput, field, field+" must be a positive number")
	}
	return *v, nil
}

// ceilUnits rounds a raw unit count up to a whole number. A tiny epsilon
// keeps float noise from pushing an exact count over the next boundary.
func ceilUnits(raw float64) float64 {
	return math.Ceil(raw - 1e-9)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
