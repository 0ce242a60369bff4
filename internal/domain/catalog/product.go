package catalog

import (
	"strings"
	"time"

	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockStatus is derived from stock vs. min_stock and never persisted
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in-stock"
	StockStatusLowStock   StockStatus = "low-stock"
	StockStatusOutOfStock StockStatus = "out-of-stock"
)

// StockStatusFor derives the stock status from current and minimum stock.
// stock == 0 is out-of-stock even when min_stock is also 0.
func StockStatusFor(stock, minStock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatusOutOfStock
	case stock <= minStock:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// Product represents a catalog product/SKU.
// Stock is owned by the inventory service; rows are soft-deleted via Active.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null"`
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	MinStock    int             `gorm:"not null;default:5"`
	ImageURL    string          `gorm:"type:text"`
	Rating      float64         `gorm:"not null;default:5.0"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	LastUpdated time.Time `gorm:"column:last_updated"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, sku, category string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, shared.NewValidationError("Category cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Price cannot be negative")
	}

	now := time.Now()
	return &Product{
		Name:        name,
		SKU:         strings.ToUpper(sku),
		Category:    category,
		Price:       price,
		MinStock:    5,
		Rating:      5.0,
		Active:      true,
		CreatedAt:   now,
		LastUpdated: now,
	}, nil
}

// SetStock sets the stock level and refreshes the last-updated timestamp
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewValidationError("Stock cannot be negative")
	}
	p.Stock = stock
	p.LastUpdated = time.Now()
	return nil
}

// StockStatus derives the current stock status
func (p *Product) StockStatus() StockStatus {
	return StockStatusFor(p.Stock, p.MinStock)
}

// InStock reports whether any units are available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// BelowMinStock reports whether the product needs a low-stock alert
func (p *Product) BelowMinStock() bool {
	return p.Stock <= p.MinStock
}

// InventoryValue returns price * stock for this product
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Deactivate soft-deletes the product; rows are never hard-deleted
func (p *Product) Deactivate() {
	p.Active = false
	p.LastUpdated = time.Now()
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewValidationError("SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewValidationError("SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewValidationError("SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
