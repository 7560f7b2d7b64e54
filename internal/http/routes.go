package http

import (
	"github.com/gin-gonic/gin"

	"github.com/decorline/quantity-service/internal/service"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// QuantityRoutes handles registration of the calculation and catalog routes.
type QuantityRoutes struct {
	handler         *Handler
	productsHandler *ProductParametersHandler
}

// NewQuantityRoutes creates a new QuantityRoutes instance.
func NewQuantityRoutes(handler *Handler, catalogService service.CatalogService) *QuantityRoutes {
	var productsHandler *ProductParametersHandler
	if catalogService != nil {
		productsHandler = NewProductParametersHandler(catalogService)
	}

	return &QuantityRoutes{
		handler:         handler,
		productsHandler: productsHandler,
	}
}

// RegisterRoutes registers the quantity routes on the given group.
// Catalog routes are only mounted when a catalog service is configured, so a
// database-less deployment still serves inline calculations.
func (r *QuantityRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.Calculate)

	if r.productsHandler != nil {
		rg.POST("/calculate/product", r.handler.CalculateForProduct)
		rg.GET("/products/:sku/parameters", r.productsHandler.GetParameters)
		rg.PUT("/products/:sku/parameters", r.productsHandler.UpsertParameters)
		rg.GET("/products/:sku/parameters/history", r.productsHandler.History)
	}
}
