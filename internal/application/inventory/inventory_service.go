package inventory

import (
	"context"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InventoryService handles product stock operations and stock-status
// derivation
type InventoryService struct {
	productRepo catalog.ProductRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(productRepo catalog.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// ListCatalog returns active products with customer-facing fields, ordered by
// name
func (s *InventoryService) ListCatalog(ctx context.Context) ([]CatalogProductResponse, error) {
	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("list catalog", err)
	}

	responses := make([]CatalogProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToCatalogProductResponse(&products[i]))
	}
	return responses, nil
}

// ListInventory returns the full admin view of all products, active and
// inactive, with derived stock status
func (s *InventoryService) ListInventory(ctx context.Context) ([]InventoryItemResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("list inventory", err)
	}

	responses := make([]InventoryItemResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToInventoryItemResponse(&products[i]))
	}
	return responses, nil
}

// UpdateStock sets a product's stock level and refreshes its last-updated
// timestamp. Negative input is rejected before touching the store.
func (s *InventoryService) UpdateStock(ctx context.Context, productID uint, newStock int) (*InventoryItemResponse, error) {
	if newStock < 0 {
		return nil, shared.NewValidationError("Stock cannot be negative")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.WrapPersistence("load product", err)
	}

	if err := product.SetStock(newStock); err != nil {
		return nil, err
	}
	if err := s.productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
		return nil, shared.WrapPersistence("update stock", err)
	}

	response := ToInventoryItemResponse(product)
	return &response, nil
}

// LowStockAlerts returns active products at or below their minimum stock
// level, ascending by stock
func (s *InventoryService) LowStockAlerts(ctx context.Context) ([]LowStockAlertResponse, error) {
	products, err := s.productRepo.FindBelowMinStock(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("low stock alerts", err)
	}

	alerts := make([]LowStockAlertResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		alerts = append(alerts, LowStockAlertResponse{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Stock:    p.Stock,
			MinStock: p.MinStock,
			Status:   string(p.StockStatus()),
		})
	}
	return alerts, nil
}

// Statistics computes dashboard counters over active products
func (s *InventoryService) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("inventory statistics", err)
	}

	stats := &StatisticsResponse{TotalValue: decimal.Zero}
	for i := range products {
		p := &products[i]
		stats.TotalProducts++
		switch p.StockStatus() {
		case catalog.StockStatusOutOfStock:
			stats.OutOfStockItems++
			stats.LowStockItems++
		case catalog.StockStatusLowStock:
			stats.LowStockItems++
		}
		stats.TotalValue = stats.TotalValue.Add(p.InventoryValue())
	}
	return stats, nil
}
