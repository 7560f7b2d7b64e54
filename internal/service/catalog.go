package service

import (
	"context"
	"errors"

	"github.com/decorline/quantity-service/internal/domain/model"
	"github.com/decorline/quantity-service/internal/metrics"
	"github.com/decorline/quantity-service/internal/repository"
	"github.com/decorline/quantity-service/internal/service/cache"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrProductNotFound is returned when a product has no stored parameters.
var ErrProductNotFound = errors.New("product parameters not found")

// CatalogService provides access to stored product calculator parameters.
type CatalogService interface {
	// GetParameters returns the active calculator parameters for a SKU.
	GetParameters(ctx context.Context, sku string) (*repository.ProductParametersConfig, error)
	// SaveParameters stores calculator parameters for a SKU, superseding any
	// previous version.
	SaveParameters(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*repository.ProductParametersConfig, error)
	// History lists past parameter versions for a SKU, newest first.
	History(ctx context.Context, sku string, limit int) ([]repository.ProductParametersConfig, error)
}

// CatalogServiceImpl implements CatalogService with an optional read-through
// parameter cache in front of the repository.
type CatalogServiceImpl struct {
	repo  repository.ProductParametersRepositoryInterface
	cache cache.Cache
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithParameterCache enables read-through caching of parameters by SKU.
func WithParameterCache(c cache.Cache) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = c
	}
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductParametersRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetParameters returns the active calculator parameters for a SKU.
func (s *CatalogServiceImpl) GetParameters(ctx context.Context, sku string) (*repository.ProductParametersConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if s.cache != nil {
		if config, ok := s.cache.Get(sku); ok {
			metrics.RecordCatalogLookup("hit")
			return config, nil
		}
	}

	config, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		metrics.RecordCatalogLookup("error")
		return nil, err
	}
	if config == nil {
		metrics.RecordCatalogLookup("not_found")
		return nil, ErrProductNotFound
	}
	metrics.RecordCatalogLookup("found")

	if s.cache != nil {
		s.cache.Set(sku, config)
	}
	return config, nil
}

// SaveParameters stores calculator parameters for a SKU and invalidates the
// cached entry so subsequent reads see the new version.
func (s *CatalogServiceImpl) SaveParameters(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*repository.ProductParametersConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	config, err := s.repo.Upsert(ctx, sku, params, updatedBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(sku)
	}
	return config, nil
}

// History lists past parameter versions for a SKU.
func (s *CatalogServiceImpl) History(ctx context.Context, sku string, limit int) ([]repository.ProductParametersConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.History(ctx, sku, limit)
}
