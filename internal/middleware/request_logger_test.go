package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decorline/quantity-service/internal/domain/model"
)

// capturingLoggingService records created entries for assertions.
type capturingLoggingService struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *capturingLoggingService) CreateLog(_ context.Context, entry *model.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *capturingLoggingService) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *capturingLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (s *capturingLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (s *capturingLoggingService) captured() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func waitForEntries(t *testing.T, svc *capturingLoggingService, n int) []*model.LogEntry {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if entries := svc.captured(); len(entries) >= n {
			return entries
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d log entries", n)
	return nil
}

func TestRequestLogger_PersistsEntry(t *testing.T) {
	svc := &capturingLoggingService{}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.POST("/api/calculate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"quantity": 13})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	entries := waitForEntries(t, svc, 1)
	entry := entries[0]
	assert.Equal(t, "req-42", entry.RequestID)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, "/api/calculate", entry.Path)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
	assert.Equal(t, "info", entry.Level)
}

func TestRequestLogger_ErrorLevelForServerErrors(t *testing.T) {
	svc := &capturingLoggingService{}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := waitForEntries(t, svc, 1)
	assert.Equal(t, "error", entries[0].Level)
}

func TestRequestLogger_NilServiceStillLogs(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(200))
	assert.Equal(t, "warn", getLogLevel(404))
	assert.Equal(t, "error", getLogLevel(503))
}
