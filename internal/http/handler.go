package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/decorline/quantity-service/internal/catalog"
	"github.com/decorline/quantity-service/internal/domain/dto"
	"github.com/decorline/quantity-service/internal/domain/model"
	"github.com/decorline/quantity-service/internal/i18n"
	"github.com/decorline/quantity-service/internal/middleware"
	"github.com/decorline/quantity-service/internal/service"
)

// Handler provides HTTP handlers for quantity calculation routes.
type Handler struct {
	calculator service.UnitCalculator
	catalog    service.CatalogService
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.UnitCalculator, catalogService service.CatalogService) *Handler {
	return &Handler{
		calculator: calculator,
		catalog:    catalogService,
	}
}

// Calculate handles POST /api/calculate requests.
//
// @Summary      Calculate purchase quantity
// @Description  Converts a customer measurement into a purchasable quantity using the product parameters supplied inline. The calculation mode selects the conversion formula (roll, package, branch, square_meter, tile, length). Discrete modes round up so the purchased amount always covers the measured need.
// @Tags         Calculation
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, fa)"
// @Param        request body dto.CalculateRequest true "Measurement and product parameters"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Invalid measurement input"
// @Failure      422 {object} dto.ErrorResponse "Product configuration defect"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	params := req.CalculatorParameters()
	// Accept mode aliases (legacy catalog spellings, Persian labels) at the
	// boundary; unrecognized modes pass through and are rejected by the core.
	if mode, ok := catalog.NormalizeMode(req.Mode); ok {
		params.Mode = mode
	}

	h.auditCalculation(c, string(params.Mode), "", map[string]interface{}{
		"mode": string(params.Mode),
	})

	h.respondWithCalculation(c, builder, params, req.Measurement)
}

// CalculateForProduct handles POST /api/calculate/product requests.
//
// @Summary      Calculate quantity for a catalog product
// @Description  Resolves the stored calculator parameters for the given SKU and converts the customer measurement into a purchasable quantity. An optional unit price in the request overrides the stored price.
// @Tags         Calculation
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, fa)"
// @Param        request body dto.CalculateProductRequest true "SKU and measurement"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Invalid measurement input"
// @Failure      404 {object} dto.ErrorResponse "Product parameters not found"
// @Failure      422 {object} dto.ErrorResponse "Product configuration defect"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculate/product [post]
func (h *Handler) CalculateForProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if h.catalog == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, service.ErrRepositoryNotConfigured)
		return
	}

	config, err := h.catalog.GetParameters(c.Request.Context(), req.SKU)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
		case errors.Is(err, service.ErrRepositoryNotConfigured):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	params := config.Parameters
	if req.UnitPrice != nil {
		params.UnitPrice = req.UnitPrice
	}

	h.auditCalculation(c, string(params.Mode), req.SKU, map[string]interface{}{
		"sku":  req.SKU,
		"mode": string(params.Mode),
	})

	h.respondWithCalculation(c, builder, params, req.Measurement)
}

// respondWithCalculation runs the calculation and writes the result or the
// classified error. Configuration defects map to 422, bad user input to 400.
func (h *Handler) respondWithCalculation(c *gin.Context, builder *ResponseBuilder, params model.CalculatorParameters, input model.Measurement) {
	result, cerr := h.calculator.Calculate(params, input)
	if cerr != nil {
		status := dto.CalculationStatus(cerr)
		resp := dto.NewCalculationError(cerr).WithRequestID(middleware.GetRequestID(c))
		// Non-default locales get the localized error-kind message; the
		// offending field stays machine readable in Details.
		if locale := i18n.GetLocale(c); locale != i18n.DefaultLocale {
			resp.Message = i18n.GetTranslator().Translate(i18n.CalculationErrorKey(cerr.Kind), locale)
		}
		_ = c.Error(cerr)
		c.AbortWithStatusJSON(status, resp)
		return
	}

	builder.SuccessOK(result)
}

// auditCalculation records a calculation request in the audit trail when a
// logging service is wired into the request context.
func (h *Handler) auditCalculation(c *gin.Context, mode, sku string, fields map[string]interface{}) {
	loggingService, exists := c.Get("logging_service")
	if !exists {
		return
	}
	ls, ok := loggingService.(service.LoggingService)
	if !ok {
		return
	}
	message := "Quantity calculation requested"
	if sku != "" {
		message = "Catalog quantity calculation requested"
	}
	middleware.AuditLog(ls, c, "calculate", message, fields)
}
