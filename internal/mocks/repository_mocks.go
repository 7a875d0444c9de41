// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/guttosm/tour-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTourPackagesRepositoryInterface struct {
	mock.Mock
}

func (m *MockTourPackagesRepositoryInterface) List(ctx context.Context) ([]model.TourPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TourPackage), args.Error(1)
}

func (m *MockTourPackagesRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourPackagesRepositoryInterface) Seed(ctx context.Context, packages []model.TourPackage, createdBy string) error {
	args := m.Called(ctx, packages, createdBy)
	return args.Error(0)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
