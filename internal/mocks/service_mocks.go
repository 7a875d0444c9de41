// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockPricingCalculator struct {
	mock.Mock
}

func (m *MockPricingCalculator) Calculate(packageName string, groupSize, marginPercent int) (model.PricingResult, error) {
	args := m.Called(packageName, groupSize, marginPercent)
	return args.Get(0).(model.PricingResult), args.Error(1)
}

func (m *MockPricingCalculator) Catalog() *catalog.Catalog {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*catalog.Catalog)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
