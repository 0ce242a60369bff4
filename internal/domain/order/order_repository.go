package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stats holds order-level aggregates. Revenue and NonCancelled
// exclude cancelled orders; TotalOrders and OrdersToday do not.
type Stats struct {
	TotalOrders  int64
	NonCancelled int64
	Revenue      decimal.Decimal
	OrdersToday  int64
}

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	// FindByID finds an order by its generated id
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindRecent returns up to limit orders, newest first
	FindRecent(ctx context.Context, limit int) ([]Order, error)

	// ExistsByID reports whether an order with the id already exists
	ExistsByID(ctx context.Context, id string) (bool, error)

	// CountByCustomer counts orders placed by the customer
	CountByCustomer(ctx context.Context, customerID string) (int64, error)

	// Create inserts a new order
	Create(ctx context.Context, o *Order) error

	// Save persists changes to an existing order
	Save(ctx context.Context, o *Order) error

	// Aggregate computes order-level statistics in a single query
	Aggregate(ctx context.Context) (*Stats, error)
}
