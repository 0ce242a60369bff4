package catalog

import "context"

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindActive returns all active products ordered by name
	FindActive(ctx context.Context) ([]Product, error)

	// FindAll returns all products, active and inactive, ordered by name
	FindAll(ctx context.Context) ([]Product, error)

	// FindBelowMinStock returns active products with stock <= min_stock,
	// ordered by stock ascending
	FindBelowMinStock(ctx context.Context) ([]Product, error)

	// Save persists a product (insert or update)
	Save(ctx context.Context, product *Product) error

	// UpdateStock sets the stock level and last_updated atomically within a
	// single statement to avoid lost updates under concurrent admin edits
	UpdateStock(ctx context.Context, id uint, stock int) error
}
