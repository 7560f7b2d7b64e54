// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/decorline/quantity-service/internal/domain/model"
	"github.com/decorline/quantity-service/internal/repository"
)

// MockProductParametersRepository is a testify mock for
// repository.ProductParametersRepositoryInterface.
type MockProductParametersRepository struct {
	mock.Mock
}

func (m *MockProductParametersRepository) GetBySKU(ctx context.Context, sku string) (*repository.ProductParametersConfig, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductParametersConfig), args.Error(1)
}

func (m *MockProductParametersRepository) Upsert(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*repository.ProductParametersConfig, error) {
	args := m.Called(ctx, sku, params, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductParametersConfig), args.Error(1)
}

func (m *MockProductParametersRepository) History(ctx context.Context, sku string, limit int) ([]repository.ProductParametersConfig, error) {
	args := m.Called(ctx, sku, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProductParametersConfig), args.Error(1)
}
