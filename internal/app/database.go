// Package app provides database initialization and setup.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/circuitbreaker"
	"github.com/guttosm/tour-service/internal/metrics"
	"github.com/guttosm/tour-service/internal/repository"
	"github.com/guttosm/tour-service/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	seedTimeout = 5 * time.Second
	seedAuthor  = "system"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                         *repository.MongoDB
	TourPackagesRepo           repository.TourPackagesRepositoryInterface
	LoggingService             service.LoggingService
	TourPackagesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker         *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTLDays()); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	packagesCB := newCircuitBreaker("mongodb-tour-packages", cfg)
	logsCB := newCircuitBreaker("mongodb-logs", cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	packagesRepo := repository.NewTourPackagesRepositoryWithCircuitBreaker(repository.NewTourPackagesRepository(db), packagesCB)

	return &DatabaseComponents{
		DB:                         db,
		TourPackagesRepo:           packagesRepo,
		LoggingService:             service.NewLoggingService(logsRepo),
		TourPackagesCircuitBreaker: packagesCB,
		LogsCircuitBreaker:         logsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("circuit", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.SetCircuitState(name, int(to))
		},
	})
	metrics.SetCircuitState(name, int(cb.State()))
	return cb
}

// LoadStoredCatalog seeds an empty tour_packages collection from seed and
// builds the catalog from what is stored.
func LoadStoredCatalog(ctx context.Context, repo repository.TourPackagesRepositoryInterface, seed *catalog.Catalog) (*catalog.Catalog, error) {
	if repo == nil {
		return nil, errors.New("tour packages repository is nil")
	}

	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tour packages: %w", err)
	}

	if count == 0 {
		if err := repo.Seed(ctx, seed.Packages(), seedAuthor); err != nil {
			return nil, fmt.Errorf("seed tour packages: %w", err)
		}
		log.Info().Strs("packages", seed.Names()).Msg("Seeded tour packages")
	}

	stored, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tour packages: %w", err)
	}

	return catalog.New(stored)
}
