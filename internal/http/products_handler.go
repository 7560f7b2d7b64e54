package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/decorline/quantity-service/internal/catalog"
	"github.com/decorline/quantity-service/internal/domain/dto"
	"github.com/decorline/quantity-service/internal/i18n"
	"github.com/decorline/quantity-service/internal/middleware"
	"github.com/decorline/quantity-service/internal/repository"
	"github.com/decorline/quantity-service/internal/service"
)

// ProductParametersHandler provides HTTP handlers for product parameter routes.
type ProductParametersHandler struct {
	catalog service.CatalogService
}

// NewProductParametersHandler creates a new ProductParametersHandler instance.
func NewProductParametersHandler(catalogService service.CatalogService) *ProductParametersHandler {
	return &ProductParametersHandler{catalog: catalogService}
}

// parametersPayload shapes a stored configuration for API responses.
func parametersPayload(config *repository.ProductParametersConfig) map[string]interface{} {
	return map[string]interface{}{
		"sku":        config.SKU,
		"parameters": config.Parameters,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	}
}

// GetParameters handles GET /api/products/:sku/parameters requests.
//
// @Summary      Get product calculator parameters
// @Description  Returns the active calculator parameter configuration for a SKU
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Success      200 {object} dto.SuccessResponse "Active parameters"
// @Failure      404 {object} dto.ErrorResponse "No parameters stored for this SKU"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{sku}/parameters [get]
func (h *ProductParametersHandler) GetParameters(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sku := c.Param("sku")

	config, err := h.catalog.GetParameters(c.Request.Context(), sku)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(parametersPayload(config))
}

// UpsertParameters handles PUT /api/products/:sku/parameters requests.
//
// @Summary      Store product calculator parameters
// @Description  Stores a new calculator parameter configuration for a SKU, superseding any previous version. The previous configuration is retained in the history. The body carries either canonical parameters or a raw attribute map, which is normalized (alias keys, Persian labels, numeric spellings) before storage.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Param        request body dto.UpsertProductParametersRequest true "Parameter configuration"
// @Success      200 {object} dto.SuccessResponse "Stored parameters"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{sku}/parameters [put]
func (h *ProductParametersHandler) UpsertParameters(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sku := c.Param("sku")

	var req dto.UpsertProductParametersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	params := req.Parameters
	if len(req.Attributes) > 0 {
		normalized, err := catalog.Normalize(req.RawMode(), req.Attributes)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
		if !normalized.Mode.Valid() {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody,
				&dto.ValidationError{Field: "mode", Message: "unrecognized calculation mode"})
			return
		}
		params = normalized
	}

	config, err := h.catalog.SaveParameters(c.Request.Context(), sku, params, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_parameters", "Product parameters updated", map[string]interface{}{
				"sku":     sku,
				"mode":    string(params.Mode),
				"version": config.Version,
			})
		}
	}

	builder.SuccessOK(parametersPayload(config))
}

// History handles GET /api/products/:sku/parameters/history requests.
//
// @Summary      List product parameter history
// @Description  Returns past calculator parameter configurations for a SKU, newest first
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Parameter history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{sku}/parameters/history [get]
func (h *ProductParametersHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sku := c.Param("sku")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalog.History(c.Request.Context(), sku, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
