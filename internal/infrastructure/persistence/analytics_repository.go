package persistence

import (
	"context"
	"time"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/phetoho/backend/internal/domain/chat"
	"github.com/phetoho/backend/internal/domain/order"
	"github.com/phetoho/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements report.AnalyticsRepository using GORM.
// All revenue aggregates exclude cancelled orders.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

type revenueRow struct {
	Revenue decimal.Decimal
}

// MonthlyRevenue sums order totals for the month, excluding cancelled
func (r *GormAnalyticsRepository) MonthlyRevenue(ctx context.Context, m report.Month) (decimal.Decimal, error) {
	start, end := monthRange(m)
	var row revenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) AS revenue
		FROM orders
		WHERE status <> 'cancelled' AND created_at >= ? AND created_at < ?`,
		start, end).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Revenue, nil
}

// TotalRevenue sums order totals excluding cancelled
func (r *GormAnalyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row revenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) AS revenue
		FROM orders
		WHERE status <> 'cancelled'`).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Revenue, nil
}

// DistinctCustomers counts distinct customer emails across all orders
func (r *GormAnalyticsRepository) DistinctCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Distinct("customer_email").
		Count(&count).Error
	return count, err
}

// DistinctCustomersInMonth counts distinct customer emails for orders created
// in the month
func (r *GormAnalyticsRepository) DistinctCustomersInMonth(ctx context.Context, m report.Month) (int64, error) {
	start, end := monthRange(m)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Distinct("customer_email").
		Count(&count).Error
	return count, err
}

// ActiveProductCount counts active products
func (r *GormAnalyticsRepository) ActiveProductCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

// LowStockCount counts active products with stock at or below minimum
func (r *GormAnalyticsRepository) LowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("active = ? AND stock <= min_stock", true).
		Count(&count).Error
	return count, err
}

// ChatLogCount counts all chat log entries
func (r *GormAnalyticsRepository) ChatLogCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&chat.LogEntry{}).
		Count(&count).Error
	return count, err
}

// ChatLogCountToday counts chat log entries created today
func (r *GormAnalyticsRepository) ChatLogCountToday(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&chat.LogEntry{}).
		Where("created_at >= ?", todayStart(time.Now())).
		Count(&count).Error
	return count, err
}

// NonCancelledOrderCount counts orders excluding cancelled
func (r *GormAnalyticsRepository) NonCancelledOrderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("status <> ?", order.StatusCancelled).
		Count(&count).Error
	return count, err
}

// TopProducts ranks products by order frequency, descending, up to limit.
// Ranking joins on the first line item of each order only; orders with more
// than one line item contribute just their first product.
func (r *GormAnalyticsRepository) TopProducts(ctx context.Context, limit int) ([]report.ProductOrderCount, error) {
	var rows []report.ProductOrderCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS product_id, p.name AS product_name, COUNT(*) AS order_count
		FROM orders o
		JOIN products p ON p.id = `+r.firstItemIDExpr()+`
		WHERE o.status <> 'cancelled'
		GROUP BY p.id, p.name
		ORDER BY order_count DESC, p.name ASC
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// firstItemIDExpr extracts the product id of the first element of the items
// JSON blob, in the dialect of the active driver
func (r *GormAnalyticsRepository) firstItemIDExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "CAST(o.items::json -> 0 ->> 'id' AS BIGINT)"
	}
	return "json_extract(o.items, '$[0].id')"
}

func monthRange(m report.Month) (time.Time, time.Time) {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
