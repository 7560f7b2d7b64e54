// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/decorline/quantity-service/internal/domain/model"
)

// ProductParametersRepositoryInterface defines the interface for product
// parameter repository operations.
type ProductParametersRepositoryInterface interface {
	GetBySKU(ctx context.Context, sku string) (*ProductParametersConfig, error)
	Upsert(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*ProductParametersConfig, error)
	History(ctx context.Context, sku string, limit int) ([]ProductParametersConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
