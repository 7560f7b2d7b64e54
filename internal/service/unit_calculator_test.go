package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decorline/quantity-service/internal/domain/model"
	"github.com/decorline/quantity-service/internal/service"
)

func f64(v float64) *float64 { return &v }

func TestUnitCalculatorService_Calculate(t *testing.T) {
	tests := []struct {
		name             string
		opts             []service.Option
		params           model.CalculatorParameters
		input            model.Measurement
		expectedQuantity float64
		expectedUnit     string
		expectedKind     model.ErrorKind
	}{
		{
			name: "package mode with default waste",
			params: model.CalculatorParameters{
				Mode:            model.ModePackage,
				PackageCoverage: f64(2.2),
			},
			input:            model.Measurement{Area: f64(25)},
			expectedQuantity: 13,
			expectedUnit:     "packages",
		},
		{
			name: "deployment waste default applies when product has no override",
			opts: []service.Option{service.WithDefaultWastePercentage(0.2)},
			params: model.CalculatorParameters{
				Mode:            model.ModePackage,
				PackageCoverage: f64(2.2),
			},
			input:            model.Measurement{Area: f64(25)},
			expectedQuantity: 14,
			expectedUnit:     "packages",
		},
		{
			name: "product waste override wins over deployment default",
			opts: []service.Option{service.WithDefaultWastePercentage(0.2)},
			params: model.CalculatorParameters{
				Mode:            model.ModePackage,
				PackageCoverage: f64(2.2),
				WastePercentage: f64(0),
			},
			input:            model.Measurement{Area: f64(25)},
			expectedQuantity: 12,
			expectedUnit:     "packages",
		},
		{
			name: "roll mode without fixed allowance",
			params: model.CalculatorParameters{
				Mode:       model.ModeRoll,
				RollWidth:  f64(0.5),
				RollLength: f64(10),
			},
			input:            model.Measurement{Area: f64(4.5)},
			expectedQuantity: 1,
			expectedUnit:     "rolls",
		},
		{
			name: "deployment roll fixed allowance applies",
			opts: []service.Option{service.WithRollFixedAllowance(1.5)},
			params: model.CalculatorParameters{
				Mode:       model.ModeRoll,
				RollWidth:  f64(0.5),
				RollLength: f64(10),
			},
			input:            model.Measurement{Area: f64(4.5)},
			expectedQuantity: 2,
			expectedUnit:     "rolls",
		},
		{
			name: "length mode with price",
			params: model.CalculatorParameters{
				Mode:      model.ModeLength,
				UnitPrice: f64(50000),
			},
			input:            model.Measurement{Length: f64(4.5)},
			expectedQuantity: 4.5,
			expectedUnit:     "m",
		},
		{
			name: "missing parameter propagates",
			params: model.CalculatorParameters{
				Mode: model.ModePackage,
			},
			input:        model.Measurement{Area: f64(25)},
			expectedKind: model.ErrMissingParameter,
		},
		{
			name: "unsupported mode propagates",
			params: model.CalculatorParameters{
				Mode: model.Mode("weight"),
			},
			input:        model.Measurement{Area: f64(25)},
			expectedKind: model.ErrUnsupportedMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewUnitCalculatorService(tt.opts...)

			result, cerr := svc.Calculate(tt.params, tt.input)

			if tt.expectedKind != "" {
				require.NotNil(t, cerr)
				assert.Equal(t, tt.expectedKind, cerr.Kind)
				return
			}

			require.Nil(t, cerr)
			assert.Equal(t, tt.expectedQuantity, result.Quantity)
			assert.Equal(t, tt.expectedUnit, result.Unit)
		})
	}
}

func TestUnitCalculatorService_CalculateDoesNotMutateParams(t *testing.T) {
	svc := service.NewUnitCalculatorService(
		service.WithDefaultWastePercentage(0.2),
		service.WithRollFixedAllowance(1.5),
	)

	params := model.CalculatorParameters{
		Mode:       model.ModeRoll,
		RollWidth:  f64(0.5),
		RollLength: f64(10),
	}

	_, cerr := svc.Calculate(params, model.Measurement{Area: f64(4.5)})
	require.Nil(t, cerr)

	// Calculate receives params by value, so the caller's copy stays clean.
	assert.Nil(t, params.WastePercentage)
	assert.Nil(t, params.RollFixedAllowance)
}

func TestWithDefaultWastePercentage_RejectsNegative(t *testing.T) {
	svc := service.NewUnitCalculatorService(service.WithDefaultWastePercentage(-0.5))

	result, cerr := svc.Calculate(model.CalculatorParameters{
		Mode:            model.ModePackage,
		PackageCoverage: f64(2.2),
	}, model.Measurement{Area: f64(25)})

	require.Nil(t, cerr)
	assert.Equal(t, float64(13), result.Quantity)
}
