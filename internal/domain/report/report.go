package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Trend tags the direction of month-over-month sales growth
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Month identifies a calendar month
type Month struct {
	Year  int
	Month time.Month
}

// CurrentMonth returns the calendar month containing now. The instant is
// normalized to UTC first so the label always matches the UTC month
// boundaries revenue is bucketed by.
func CurrentMonth(now time.Time) Month {
	now = now.UTC()
	return Month{Year: now.Year(), Month: now.Month()}
}

// Previous returns the calendar month before m
func (m Month) Previous() Month {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	return Month{Year: prev.Year(), Month: prev.Month()}
}

// ProductOrderCount ranks a product by how often it appears as the first line
// item of an order. Only item index 0 is considered, mirroring the original
// items-blob join; this is a documented limitation.
type ProductOrderCount struct {
	ProductID   uint
	ProductName string
	OrderCount  int64
}

// AnalyticsRepository is the read-only aggregation boundary for reports. It is
// the only component that joins across orders, products, and chat logs.
type AnalyticsRepository interface {
	// MonthlyRevenue sums order totals for the month, excluding cancelled
	MonthlyRevenue(ctx context.Context, m Month) (decimal.Decimal, error)

	// DistinctCustomers counts distinct customer emails across all orders
	DistinctCustomers(ctx context.Context) (int64, error)

	// DistinctCustomersInMonth counts distinct customer emails for orders
	// created in the month
	DistinctCustomersInMonth(ctx context.Context, m Month) (int64, error)

	// ActiveProductCount counts active products
	ActiveProductCount(ctx context.Context) (int64, error)

	// LowStockCount counts active products with stock <= min_stock
	LowStockCount(ctx context.Context) (int64, error)

	// ChatLogCount counts all chat log entries
	ChatLogCount(ctx context.Context) (int64, error)

	// ChatLogCountToday counts chat log entries created today
	ChatLogCountToday(ctx context.Context) (int64, error)

	// NonCancelledOrderCount counts orders excluding cancelled
	NonCancelledOrderCount(ctx context.Context) (int64, error)

	// TotalRevenue sums order totals excluding cancelled
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// TopProducts ranks products by order frequency over the items blob's
	// first element, descending, up to limit
	TopProducts(ctx context.Context, limit int) ([]ProductOrderCount, error)
}

// BusinessSnapshot is the metric set forwarded to the insight generator
type BusinessSnapshot struct {
	Orders      int64           `json:"orders"`
	Revenue     decimal.Decimal `json:"revenue"`
	Customers   int64           `json:"customers"`
	TopProducts []string        `json:"top_products"`
}

// Insight is a single generated business recommendation
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Action      string  `json:"action,omitempty"`
}

// InsightGenerator is the outbound boundary for AI-generated insights.
// Failures never fail a report; callers substitute an empty list.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, snapshot BusinessSnapshot) ([]Insight, error)
}
