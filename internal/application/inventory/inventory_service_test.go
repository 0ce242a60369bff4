package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBelowMinStock(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id uint, stock int) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}

func testProduct(id uint, name string, price decimal.Decimal, stock, minStock int, active bool) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		SKU:      "SKU-001",
		Category: "Electronics",
		Price:    price,
		Stock:    stock,
		MinStock: minStock,
		Active:   active,
	}
}

func TestInventoryService_ListCatalog(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	products := []catalog.Product{
		testProduct(1, "Coffee Beans", decimal.NewFromFloat(24.99), 120, 25, true),
		testProduct(2, "Office Chair", decimal.NewFromFloat(449.99), 0, 5, true),
	}
	repo.On("FindActive", ctx).Return(products, nil)

	result, err := service.ListCatalog(ctx)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].InStock)
	assert.False(t, result[1].InStock)
	repo.AssertExpectations(t)
}

func TestInventoryService_ListCatalog_StoreFailure(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	repo.On("FindActive", ctx).Return(nil, errors.New("connection refused"))

	result, err := service.ListCatalog(ctx)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PERSISTENCE_ERROR", domainErr.Code)
	repo.AssertExpectations(t)
}

func TestInventoryService_ListInventory_DerivesStatus(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	products := []catalog.Product{
		testProduct(1, "Headphones", decimal.NewFromFloat(299.99), 45, 10, true),
		testProduct(2, "Fitness Watch", decimal.NewFromFloat(199.99), 8, 15, true),
		testProduct(3, "Office Chair", decimal.NewFromFloat(449.99), 0, 5, false),
	}
	repo.On("FindAll", ctx).Return(products, nil)

	result, err := service.ListInventory(ctx)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "in-stock", result[0].Status)
	assert.Equal(t, "low-stock", result[1].Status)
	assert.Equal(t, "out-of-stock", result[2].Status)
	assert.False(t, result[2].Active)
	repo.AssertExpectations(t)
}

func TestInventoryService_UpdateStock(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	product := testProduct(2, "Fitness Watch", decimal.NewFromFloat(199.99), 8, 15, true)
	repo.On("FindByID", ctx, uint(2)).Return(&product, nil)
	repo.On("UpdateStock", ctx, uint(2), 30).Return(nil)

	result, err := service.UpdateStock(ctx, 2, 30)

	require.NoError(t, err)
	assert.Equal(t, 30, result.Stock)
	assert.Equal(t, "in-stock", result.Status)
	repo.AssertExpectations(t)
}

func TestInventoryService_UpdateStock_Negative(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)

	result, err := service.UpdateStock(context.Background(), 2, -1)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	repo.AssertNotCalled(t, "FindByID")
	repo.AssertNotCalled(t, "UpdateStock")
}

func TestInventoryService_UpdateStock_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

	result, err := service.UpdateStock(ctx, 99, 10)

	assert.Nil(t, result)
	assert.Equal(t, shared.ErrNotFound, err)
	repo.AssertExpectations(t)
}

func TestInventoryService_LowStockAlerts(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	products := []catalog.Product{
		testProduct(3, "Office Chair", decimal.NewFromFloat(449.99), 0, 5, true),
		testProduct(2, "Fitness Watch", decimal.NewFromFloat(199.99), 8, 15, true),
	}
	repo.On("FindBelowMinStock", ctx).Return(products, nil)

	alerts, err := service.LowStockAlerts(ctx)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "out-of-stock", alerts[0].Status)
	assert.Equal(t, "low-stock", alerts[1].Status)
	repo.AssertExpectations(t)
}

func TestInventoryService_Statistics(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewInventoryService(repo)
	ctx := context.Background()

	products := []catalog.Product{
		testProduct(1, "A", decimal.NewFromInt(10), 5, 2, true),
		testProduct(2, "B", decimal.NewFromInt(20), 0, 5, true),
	}
	repo.On("FindActive", ctx).Return(products, nil)

	stats, err := service.Statistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.OutOfStockItems)
	assert.Equal(t, int64(1), stats.LowStockItems)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(50)), "got %s", stats.TotalValue)
}
