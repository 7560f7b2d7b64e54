//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decorline/quantity-service/internal/circuitbreaker"
)

func TestProductParametersRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductParametersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewProductParametersRepositoryWithCircuitBreaker(repo, cb)

	t.Run("upsert and read through closed circuit", func(t *testing.T) {
		stored, err := wrapped.Upsert(ctx, "WP-2001", rollParams(1.06, 10), "ops")
		require.NoError(t, err)
		require.NotNil(t, stored)

		config, err := wrapped.GetBySKU(ctx, "WP-2001")
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, stored.ID, config.ID)
	})

	t.Run("history through closed circuit", func(t *testing.T) {
		_, err := wrapped.Upsert(ctx, "WP-2001", rollParams(0.53, 10), "ops")
		require.NoError(t, err)

		configs, err := wrapped.History(ctx, "WP-2001", 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(configs), 2)
	})

	t.Run("open circuit degrades reads to not found", func(t *testing.T) {
		openCB := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
		})
		degraded := NewProductParametersRepositoryWithCircuitBreaker(repo, openCB)

		_ = openCB.Execute(ctx, func() error { return assert.AnError })
		require.True(t, openCB.IsOpen())

		config, err := degraded.GetBySKU(ctx, "WP-2001")
		assert.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("exposes breaker for monitoring", func(t *testing.T) {
		monitored := wrapped.GetCircuitBreaker()
		require.NotNil(t, monitored)
		assert.Equal(t, "closed", monitored.GetStats().State)
		assert.True(t, monitored.GetStats().IsHealthy)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("writes pass through closed circuit", func(t *testing.T) {
		err := wrapped.Create(ctx, &LogEntryDocument{
			Level:     "info",
			Message:   "HTTP request",
			RequestID: "req-cb-1",
			Timestamp: time.Now(),
		})
		assert.NoError(t, err)

		err = wrapped.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "bulk 1", Timestamp: time.Now()},
			{Level: "info", Message: "bulk 2", Timestamp: time.Now()},
		})
		assert.NoError(t, err)
	})

	t.Run("query and count pass through closed circuit", func(t *testing.T) {
		entries, err := wrapped.Query(ctx, LogQueryOptions{RequestID: "req-cb-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		count, err := wrapped.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(3))
	})

	t.Run("open circuit drops writes silently", func(t *testing.T) {
		openCB := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
		})
		degraded := NewLogsRepositoryWithCircuitBreaker(repo, openCB)

		_ = openCB.Execute(ctx, func() error { return assert.AnError })
		require.True(t, openCB.IsOpen())

		// The audit trail is best effort, so an open circuit is not an error.
		assert.NoError(t, degraded.Create(ctx, &LogEntryDocument{Message: "dropped"}))
		assert.NoError(t, degraded.CreateMany(ctx, []*LogEntryDocument{{Message: "dropped"}}))
	})
}
