// Package app provides service initialization.
package app

import (
	"github.com/decorline/quantity-service/config"
	"github.com/decorline/quantity-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.UnitCalculator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CalculatorConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.DefaultWastePercentage > 0 {
		opts = append(opts, service.WithDefaultWastePercentage(cfg.DefaultWastePercentage))
	}

	if cfg.RollFixedAllowance > 0 {
		opts = append(opts, service.WithRollFixedAllowance(cfg.RollFixedAllowance))
	}

	calculator := service.NewUnitCalculatorService(opts...)

	return &ServiceComponents{
		Calculator: calculator,
	}
}
