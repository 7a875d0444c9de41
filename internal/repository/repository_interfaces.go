package repository

import (
	"context"

	"github.com/guttosm/tour-service/internal/domain/model"
)

// TourPackagesRepositoryInterface is the catalog store used at startup.
type TourPackagesRepositoryInterface interface {
	List(ctx context.Context) ([]model.TourPackage, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, packages []model.TourPackage, createdBy string) error
}

// LogsRepositoryInterface is the write side of the logs collection.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
}
