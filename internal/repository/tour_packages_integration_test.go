//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTourPackagesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTourPackagesRepository(newTestDB(t))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seed := catalog.DefaultPackages()
	require.NoError(t, repo.Seed(ctx, seed, "test"))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seed)), count)

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, stored)

	err = repo.Seed(ctx, seed[:1], "test")
	assert.True(t, mongo.IsDuplicateKeyError(err))

	assert.NoError(t, repo.Seed(ctx, nil, "test"))
}

func TestTourPackagesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})
	repo := NewTourPackagesRepositoryWithCircuitBreaker(NewTourPackagesRepository(newTestDB(t)), cb)

	require.NoError(t, repo.Seed(ctx, catalog.DefaultPackages(), "test"))
	packages, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, packages, 2)
	assert.Equal(t, circuitbreaker.StateClosed, repo.CircuitBreaker().State())

	// A duplicate seed is a real failure and trips the breaker.
	require.Error(t, repo.Seed(ctx, catalog.DefaultPackages(), "test"))
	_, err = repo.Count(ctx)
	assert.True(t, errors.Is(err, circuitbreaker.ErrCircuitOpen))
}

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))
	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))

	entry := &LogEntryDocument{
		Level:      "info",
		Message:    "Quote computed",
		RequestID:  "req-1",
		Method:     "POST",
		Path:       "/api/v1/pricing/quote",
		StatusCode: 200,
		ActionType: "pricing.quote",
		Fields:     map[string]interface{}{"package": "Budget", "group_size": 10},
	}
	require.NoError(t, repo.Create(ctx, entry))
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
		{Level: "info", Message: "one"},
		{Level: "warn", Message: "two"},
	}))
	require.NoError(t, repo.CreateMany(ctx, nil))

	count, err := db.Logs.CountDocuments(ctx, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
