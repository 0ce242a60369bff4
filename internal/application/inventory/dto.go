package inventory

import (
	"time"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CatalogProductResponse is the customer-facing product view
type CatalogProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	InStock     bool            `json:"inStock"`
	Rating      float64         `json:"rating"`
}

// InventoryItemResponse is the admin view of a product with derived status
type InventoryItemResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	Status      string          `json:"status"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// LowStockAlertResponse flags a product at or below its minimum stock level
type LowStockAlertResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"minStock"`
	Status   string `json:"status"`
}

// StatisticsResponse summarizes inventory health for the dashboard
type StatisticsResponse struct {
	TotalProducts   int64           `json:"total_products"`
	LowStockItems   int64           `json:"low_stock_items"`
	OutOfStockItems int64           `json:"out_of_stock_items"`
	TotalValue      decimal.Decimal `json:"total_value"`
}

// ToCatalogProductResponse maps a product to its customer-facing view
func ToCatalogProductResponse(p *catalog.Product) CatalogProductResponse {
	return CatalogProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.ImageURL,
		InStock:     p.InStock(),
		Rating:      p.Rating,
	}
}

// ToInventoryItemResponse maps a product to its admin view
func ToInventoryItemResponse(p *catalog.Product) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Price:       p.Price,
		Active:      p.Active,
		Status:      string(p.StockStatus()),
		LastUpdated: p.LastUpdated,
	}
}
