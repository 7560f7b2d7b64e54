// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/decorline/quantity-service/internal/circuitbreaker"
	"github.com/decorline/quantity-service/internal/domain/model"
)

// ProductParametersRepositoryWithCircuitBreaker wraps
// ProductParametersRepository with circuit breaker protection.
type ProductParametersRepositoryWithCircuitBreaker struct {
	repo           *ProductParametersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductParametersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductParametersRepositoryWithCircuitBreaker(repo *ProductParametersRepository, cb *circuitbreaker.CircuitBreaker) *ProductParametersRepositoryWithCircuitBreaker {
	return &ProductParametersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetBySKU returns the active configuration with circuit breaker protection.
// When the circuit is open the product simply has no stored parameters and
// callers fall back to inline ones.
func (r *ProductParametersRepositoryWithCircuitBreaker) GetBySKU(ctx context.Context, sku string) (*ProductParametersConfig, error) {
	var result *ProductParametersConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetBySKU(ctx, sku)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Upsert stores a configuration with circuit breaker protection.
func (r *ProductParametersRepositoryWithCircuitBreaker) Upsert(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*ProductParametersConfig, error) {
	var result *ProductParametersConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, sku, params, updatedBy)
		return cbErr
	})
	return result, err
}

// History lists past configurations with circuit breaker protection.
func (r *ProductParametersRepositoryWithCircuitBreaker) History(ctx context.Context, sku string, limit int) ([]ProductParametersConfig, error) {
	var result []ProductParametersConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.History(ctx, sku, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductParametersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open it silently fails; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open it silently fails; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
