package service

import (
	"time"

	"github.com/decorline/quantity-service/internal/calculator"
	"github.com/decorline/quantity-service/internal/domain/model"
	"github.com/decorline/quantity-service/internal/metrics"
)

// UnitCalculator defines the interface for quantity calculation operations.
type UnitCalculator interface {
	Calculate(params model.CalculatorParameters, input model.Measurement) (model.CalculationResult, *model.CalculationError)
}

// Option configures a UnitCalculatorService.
type Option func(*UnitCalculatorService)

// UnitCalculatorService implements UnitCalculator on top of the pure
// calculation core, applying deployment-level waste policy defaults and
// recording metrics per mode and status. The service holds no mutable state,
// so a single instance serves all requests concurrently.
type UnitCalculatorService struct {
	defaultWaste       float64
	rollFixedAllowance *float64
}

// NewUnitCalculatorService creates a new UnitCalculatorService with the
// given options.
func NewUnitCalculatorService(opts ...Option) *UnitCalculatorService {
	s := &UnitCalculatorService{
		defaultWaste: calculator.DefaultWastePercentage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultWastePercentage sets the deployment-wide waste buffer applied
// when a product carries no override.
func WithDefaultWastePercentage(waste float64) Option {
	return func(s *UnitCalculatorService) {
		if waste >= 0 {
			s.defaultWaste = waste
		}
	}
}

// WithRollFixedAllowance switches the deployment to the fixed linear-meter
// allowance convention for roll mode. Products carrying their own allowance
// already use it; this applies the convention to every roll product.
func WithRollFixedAllowance(meters float64) Option {
	return func(s *UnitCalculatorService) {
		if meters > 0 {
			s.rollFixedAllowance = &meters
		}
	}
}

// Calculate applies the deployment policy defaults and delegates to the
// pure core.
func (s *UnitCalculatorService) Calculate(params model.CalculatorParameters, input model.Measurement) (model.CalculationResult, *model.CalculationError) {
	if params.WastePercentage == nil && s.defaultWaste != calculator.DefaultWastePercentage {
		waste := s.defaultWaste
		params.WastePercentage = &waste
	}
	if params.Mode == model.ModeRoll && params.RollFixedAllowance == nil && s.rollFixedAllowance != nil {
		params.RollFixedAllowance = s.rollFixedAllowance
	}

	start := time.Now()
	result, cerr := calculator.Calculate(params, input)
	duration := time.Since(start)

	if cerr != nil {
		metrics.RecordCalculation(string(params.Mode), string(cerr.Kind), duration)
		return model.CalculationResult{}, cerr
	}

	metrics.RecordCalculation(string(params.Mode), "success", duration)
	return result, nil
}
