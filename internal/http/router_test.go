package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/decorline/quantity-service/internal/service"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_CatalogRoutesRequireService(t *testing.T) {
	// Without a catalog service only the inline calculate route is mounted.
	router := setupRouter()

	w := postJSON(router, "/api/calculate/product", `{"sku": "X", "measurement": {"area": 1}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/X/parameters", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_RequestIDPropagated(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "router-test-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, "router-test-1", w.Header().Get("X-Request-ID"))
}

func TestNewRouter_RateLimitApplied(t *testing.T) {
	calculator := service.NewUnitCalculatorService()
	handler := NewHandler(calculator, nil)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 1
	cfg.RateWindow = time.Minute
	router := NewRouter(handler, NewHealthHandler(), cfg)

	w := postJSON(router, "/api/calculate", `{"mode": "square_meter", "measurement": {"area": 10}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/calculate", `{"mode": "square_meter", "measurement": {"area": 10}}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewRouter_SwaggerMounted(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	// The swagger handler responds, even if the generated doc is absent in tests.
	assert.NotEqual(t, http.StatusNotFound, w.Code)
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}
