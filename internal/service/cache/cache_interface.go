package cache

import "github.com/decorline/quantity-service/internal/repository"

// Cache defines the interface for product parameter cache operations, keyed
// by product SKU.
type Cache interface {
	Get(sku string) (*repository.ProductParametersConfig, bool)
	Set(sku string, value *repository.ProductParametersConfig)
	Invalidate(sku string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
