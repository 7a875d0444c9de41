package repository

import (
	"context"
	"errors"

	"github.com/guttosm/tour-service/internal/circuitbreaker"
	"github.com/guttosm/tour-service/internal/domain/model"
)

// TourPackagesRepositoryWithCircuitBreaker guards the catalog store.
// Unlike logs, catalog errors are returned so startup can fall back to the
// seed explicitly.
type TourPackagesRepositoryWithCircuitBreaker struct {
	repo TourPackagesRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewTourPackagesRepositoryWithCircuitBreaker wraps repo with cb.
func NewTourPackagesRepositoryWithCircuitBreaker(repo TourPackagesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TourPackagesRepositoryWithCircuitBreaker {
	return &TourPackagesRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *TourPackagesRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.TourPackage, error) {
	var result []model.TourPackage
	err := r.cb.Execute(ctx, func() error {
		var err error
		result, err = r.repo.List(ctx)
		return err
	})
	return result, err
}

func (r *TourPackagesRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.cb.Execute(ctx, func() error {
		var err error
		result, err = r.repo.Count(ctx)
		return err
	})
	return result, err
}

func (r *TourPackagesRepositoryWithCircuitBreaker) Seed(ctx context.Context, packages []model.TourPackage, createdBy string) error {
	return r.cb.Execute(ctx, func() error {
		return r.repo.Seed(ctx, packages, createdBy)
	})
}

// CircuitBreaker exposes the breaker for health reporting.
func (r *TourPackagesRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

// LogsRepositoryWithCircuitBreaker guards log writes. Log persistence is
// best effort, so an open circuit drops entries silently.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// CircuitBreaker exposes the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
