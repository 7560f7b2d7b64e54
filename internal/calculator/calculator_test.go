package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decorline/quantity-service/internal/domain/model"
)

func f(v float64) *float64 { return &v }

// TestCalculate_Scenarios covers the concrete per-mode scenarios.
func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		params          model.CalculatorParameters
		input           model.Measurement
		wantQuantity    float64
		wantUnit        string
		wantCovered     float64
		wantCost        *float64
	}{
		{
			name: "roll 1.0x10.0 wall 3x2.5 needs 1 roll",
			params: model.CalculatorParameters{
				Mode:      model.ModeRoll,
				RollWidth: f(1.0), RollLength: f(10.0),
				WastePercentage: f(0.10),
			},
			input:        model.Measurement{Length: f(3), Width: f(2.5)},
			wantQuantity: 1,
			wantUnit:     "rolls",
			wantCovered:  10,
		},
		{
			name: "package coverage 2.2 floor 25m2 needs 13 packages",
			params: model.CalculatorParameters{
				Mode:            model.ModePackage,
				PackageCoverage: f(2.2),
				WastePercentage: f(0.10),
			},
			input:        model.Measurement{Area: f(25)},
			wantQuantity: 13,
			wantUnit:     "packages",
			wantCovered:  13 * 2.2,
		},
		{
			name: "tile 0.3x0.3 area 10m2 needs 123 tiles",
			params: model.CalculatorParameters{
				Mode:      model.ModeTile,
				TileWidth: f(0.3), TileLength: f(0.3),
				WastePercentage: f(0.10),
			},
			input:        model.Measurement{Area: f(10)},
			wantQuantity: 123,
			wantUnit:     "tiles",
			wantCovered:  123 * 0.3 * 0.3,
		},
		{
			name: "branch 2.5m wall 17m with 5% waste needs 8 branches",
			params: model.CalculatorParameters{
				Mode:            model.ModeBranch,
				BranchLength:    f(2.5),
				WastePercentage: f(0.05),
			},
			input:        model.Measurement{Length: f(17)},
			wantQuantity: 8,
			wantUnit:     "branches",
			wantCovered:  20,
		},
		{
			name: "length 4.5m at 50000 per meter",
			params: model.CalculatorParameters{
				Mode:      model.ModeLength,
				UnitPrice: f(50000),
			},
			input:        model.Measurement{Length: f(4.5)},
			wantQuantity: 4.5,
			wantUnit:     "m",
			wantCovered:  4.5,
			wantCost:     f(225000),
		},
		{
			name:         "square meter from length and width",
			params:       model.CalculatorParameters{Mode: model.ModeSquareMeter},
			input:        model.Measurement{Length: f(4), Width: f(3)},
			wantQuantity: 12,
			wantUnit:     "m²",
			wantCovered:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, cerr := Calculate(tt.params, tt.input)
			require.Nil(t, cerr)
			assert.InDelta(t, tt.wantQuantity, result.Quantity, 1e-9)
			assert.Equal(t, tt.wantUnit, result.Unit)
			assert.InDelta(t, tt.wantCovered, result.CoveredMeasure, 1e-9)
			if tt.wantCost != nil {
				require.NotNil(t, result.TotalCost)
				assert.InDelta(t, *tt.wantCost, *result.TotalCost, 1e-6)
			}
		})
	}
}

// TestCalculate_Errors covers the four error kinds.
func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		params    model.CalculatorParameters
		input     model.Measurement
		wantKind  model.ErrorKind
		wantField string
	}{
		{
			name:      "unsupported mode",
			params:    model.CalculatorParameters{Mode: "carton"},
			input:     model.Measurement{Area: f(10)},
			wantKind:  model.ErrUnsupportedMode,
			wantField: "mode",
		},
		{
			name:      "roll without roll width",
			params:    model.CalculatorParameters{Mode: model.ModeRoll, RollLength: f(10)},
			input:     model.Measurement{Area: f(7.5)},
			wantKind:  model.ErrMissingParameter,
			wantField: "roll_width",
		},
		{
			name:      "roll without roll length",
			params:    model.CalculatorParameters{Mode: model.ModeRoll, RollWidth: f(1)},
			input:     model.Measurement{Area: f(7.5)},
			wantKind:  model.ErrMissingParameter,
			wantField: "roll_length",
		},
		{
			name:      "package without coverage",
			params:    model.CalculatorParameters{Mode: model.ModePackage},
			input:     model.Measurement{Area: f(25)},
			wantKind:  model.ErrMissingParameter,
			wantField: "package_coverage",
		},
		{
			name:      "package coverage zero is division by zero not infinity",
			params:    model.CalculatorParameters{Mode: model.ModePackage, PackageCoverage: f(0)},
			input:     model.Measurement{Area: f(25)},
			wantKind:  model.ErrDivisionByZero,
			wantField: "package_coverage",
		},
		{
			name:      "tile without any tile dimension",
			params:    model.CalculatorParameters{Mode: model.ModeTile},
			input:     model.Measurement{Area: f(10)},
			wantKind:  model.ErrMissingParameter,
			wantField: "tile_area",
		},
		{
			name:      "tile area zero",
			params:    model.CalculatorParameters{Mode: model.ModeTile, TileArea: f(0)},
			input:     model.Measurement{Area: f(10)},
			wantKind:  model.ErrDivisionByZero,
			wantField: "tile_area",
		},
		{
			name:      "branch without branch length",
			params:    model.CalculatorParameters{Mode: model.ModeBranch},
			input:     model.Measurement{Length: f(17)},
			wantKind:  model.ErrMissingParameter,
			wantField: "branch_length",
		},
		{
			name:      "length without any price",
			params:    model.CalculatorParameters{Mode: model.ModeLength},
			input:     model.Measurement{Length: f(4.5)},
			wantKind:  model.ErrMissingParameter,
			wantField: "unit_price",
		},
		{
			name:      "zero area is invalid input not zero quantity",
			params:    model.CalculatorParameters{Mode: model.ModeSquareMeter},
			input:     model.Measurement{Area: f(0)},
			wantKind:  model.ErrInvalidInput,
			wantField: "area",
		},
		{
			name:      "negative length",
			params:    model.CalculatorParameters{Mode: model.ModeLength, UnitPrice: f(100)},
			input:     model.Measurement{Length: f(-2)},
			wantKind:  model.ErrInvalidInput,
			wantField: "length",
		},
		{
			name:      "zero width",
			params:    model.CalculatorParameters{Mode: model.ModeSquareMeter},
			input:     model.Measurement{Length: f(3), Width: f(0)},
			wantKind:  model.ErrInvalidInput,
			wantField: "width",
		},
		{
			name:      "missing measurement entirely",
			params:    model.CalculatorParameters{Mode: model.ModePackage, PackageCoverage: f(2.2)},
			input:     model.Measurement{},
			wantKind:  model.ErrInvalidInput,
			wantField: "area",
		},
		{
			name:      "area disagrees with length times width",
			params:    model.CalculatorParameters{Mode: model.ModeSquareMeter},
			input:     model.Measurement{Length: f(3), Width: f(2.5), Area: f(9)},
			wantKind:  model.ErrInvalidInput,
			wantField: "area",
		},
		{
			name:      "negative waste percentage",
			params:    model.CalculatorParameters{Mode: model.ModePackage, PackageCoverage: f(2.2), WastePercentage: f(-0.1)},
			input:     model.Measurement{Area: f(25)},
			wantKind:  model.ErrInvalidInput,
			wantField: "waste_percentage",
		},
		{
			name:      "negative roll width",
			params:    model.CalculatorParameters{Mode: model.ModeRoll, RollWidth: f(-1.06), RollLength: f(10)},
			input:     model.Measurement{Area: f(7.5)},
			wantKind:  model.ErrInvalidInput,
			wantField: "roll_width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cerr := Calculate(tt.params, tt.input)
			require.NotNil(t, cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.NotEmpty(t, cerr.Message)
		})
	}
}

// TestCalculate_CeilingNeverUnderCounts verifies quantity × unit coverage is
// never below the requested measure across a sweep of inputs.
func TestCalculate_CeilingNeverUnderCounts(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:      model.ModeRoll,
		RollWidth: f(1.06), RollLength: f(10.05),
	}

	for area := 0.5; area < 120; area += 0.7 {
		result, cerr := Calculate(params, model.Measurement{Area: f(area)})
		require.Nil(t, cerr, "area %v", area)

		rollArea := 1.06 * 10.05
		assert.GreaterOrEqual(t, result.Quantity, area/rollArea, "area %v", area)
		assert.GreaterOrEqual(t, result.CoveredMeasure+1e-9, area, "area %v", area)
		assert.Equal(t, result.Quantity, float64(int64(result.Quantity)), "discrete quantity must be integral")
	}
}

// TestCalculate_Monotonic verifies that growing the input never shrinks the
// quantity while parameters stay fixed.
func TestCalculate_Monotonic(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:            model.ModePackage,
		PackageCoverage: f(2.2),
	}

	prev := 0.0
	for area := 1.0; area <= 200; area += 1.3 {
		result, cerr := Calculate(params, model.Measurement{Area: f(area)})
		require.Nil(t, cerr)
		assert.GreaterOrEqual(t, result.Quantity, prev, "area %v", area)
		prev = result.Quantity
	}
}

// TestCalculate_Idempotent verifies repeated calls with identical inputs
// yield identical results.
func TestCalculate_Idempotent(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:      model.ModeTile,
		TileArea:  f(0.09),
		UnitPrice: f(12000),
	}
	input := model.Measurement{Length: f(5), Width: f(2)}

	first, cerr := Calculate(params, input)
	require.Nil(t, cerr)
	for i := 0; i < 10; i++ {
		again, cerr := Calculate(params, input)
		require.Nil(t, cerr)
		assert.Equal(t, first, again)
	}
}

// TestCalculate_RollFixedAllowance exercises the opt-in fixed linear
// allowance convention for roll mode.
func TestCalculate_RollFixedAllowance(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:               model.ModeRoll,
		RollWidth:          f(1.0),
		RollLength:         f(10.0),
		RollFixedAllowance: f(1.5),
	}

	// 7.5 m² wall: 7.5 linear meters + 1.5 allowance = 9 m, still one roll.
	result, cerr := Calculate(params, model.Measurement{Area: f(7.5)})
	require.Nil(t, cerr)
	assert.Equal(t, 1.0, result.Quantity)

	// 9 m² wall: 9 + 1.5 = 10.5 m exceeds one 10 m roll.
	result, cerr = Calculate(params, model.Measurement{Area: f(9)})
	require.Nil(t, cerr)
	assert.Equal(t, 2.0, result.Quantity)
}

// TestCalculate_DefaultWaste verifies the 10% default applies when the
// product carries no override.
func TestCalculate_DefaultWaste(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:            model.ModePackage,
		PackageCoverage: f(2.2),
	}

	// 25 / 2.2 × 1.1 = 12.5 → 13 with the default buffer.
	result, cerr := Calculate(params, model.Measurement{Area: f(25)})
	require.Nil(t, cerr)
	assert.Equal(t, 13.0, result.Quantity)
}

// TestCalculate_CostOptional verifies TotalCost is present only with a price.
func TestCalculate_CostOptional(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:            model.ModePackage,
		PackageCoverage: f(2.2),
	}
	result, cerr := Calculate(params, model.Measurement{Area: f(25)})
	require.Nil(t, cerr)
	assert.Nil(t, result.TotalCost)

	params.UnitPrice = f(890000)
	result, cerr = Calculate(params, model.Measurement{Area: f(25)})
	require.Nil(t, cerr)
	require.NotNil(t, result.TotalCost)
	assert.InDelta(t, 13*890000, *result.TotalCost, 1e-6)
}

// TestCalculate_ExactFit verifies an exact multiple does not round up an
// extra unit when no waste applies.
func TestCalculate_ExactFit(t *testing.T) {
	params := model.CalculatorParameters{
		Mode:            model.ModePackage,
		PackageCoverage: f(2.5),
		WastePercentage: f(0),
	}
	result, cerr := Calculate(params, model.Measurement{Area: f(25)})
	require.Nil(t, cerr)
	assert.Equal(t, 10.0, result.Quantity)
	assert.InDelta(t, 25, result.CoveredMeasure, 1e-9)
}

// TestErrorKind_ConfigurationDefect pins the operator-vs-user split.
func TestErrorKind_ConfigurationDefect(t *testing.T) {
	assert.True(t, model.ErrMissingParameter.ConfigurationDefect())
	assert.True(t, model.ErrDivisionByZero.ConfigurationDefect())
	assert.True(t, model.ErrUnsupportedMode.ConfigurationDefect())
	assert.False(t, model.ErrInvalidInput.ConfigurationDefect())
}

// TestCalculate_NegativeParameterIsConfigurationDefect verifies that a bad
// configured value routes to the operator path while the same kind raised
// for a bad measurement stays a user error.
func TestCalculate_NegativeParameterIsConfigurationDefect(t *testing.T) {
	tests := []struct {
		name       string
		params     model.CalculatorParameters
		input      model.Measurement
		wantDefect bool
	}{
		{
			name:       "negative configured roll width",
			params:     model.CalculatorParameters{Mode: model.ModeRoll, RollWidth: f(-1.06), RollLength: f(10)},
			input:      model.Measurement{Area: f(7.5)},
			wantDefect: true,
		},
		{
			name:       "negative configured waste percentage",
			params:     model.CalculatorParameters{Mode: model.ModePackage, PackageCoverage: f(2.2), WastePercentage: f(-0.1)},
			input:      model.Measurement{Area: f(25)},
			wantDefect: true,
		},
		{
			name:       "negative measured area",
			params:     model.CalculatorParameters{Mode: model.ModePackage, PackageCoverage: f(2.2)},
			input:      model.Measurement{Area: f(-25)},
			wantDefect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cerr := Calculate(tt.params, tt.input)
			require.NotNil(t, cerr)
			assert.Equal(t, model.ErrInvalidInput, cerr.Kind)
			assert.Equal(t, tt.wantDefect, cerr.ConfigurationDefect())
		})
	}
}
