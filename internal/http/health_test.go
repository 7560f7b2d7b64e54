package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/decorline/quantity-service/internal/circuitbreaker"
)

type failingChecker struct{ err error }

func (c failingChecker) Check() error { return c.err }

func TestLiveness(t *testing.T) {
	router := gin.New()
	h := NewHealthHandler()
	h.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestReadiness(t *testing.T) {
	t.Run("ok with no registered checks", func(t *testing.T) {
		router := gin.New()
		h := NewHealthHandler()
		h.Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"service":"ok"`)
	})

	t.Run("healthy checker reports ok", func(t *testing.T) {
		router := gin.New()
		h := NewHealthHandler()
		h.RegisterChecker("database", failingChecker{err: nil})
		h.Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
	})

	t.Run("failing checker degrades readiness", func(t *testing.T) {
		router := gin.New()
		h := NewHealthHandler()
		h.RegisterChecker("database", failingChecker{err: errors.New("connection refused")})
		h.Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
		assert.Contains(t, w.Body.String(), "connection refused")
	})

	t.Run("open circuit breaker degrades readiness", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
			Name:             "catalog",
		})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })

		router := gin.New()
		h := NewHealthHandler()
		h.RegisterCircuitBreaker("catalog", cb)
		h.Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"catalog_circuit":"open"`)
	})
}
