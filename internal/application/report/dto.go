package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricNotImplemented marks metrics that have no real data source yet.
// They are reported as explicit placeholders instead of fabricated numbers.
const MetricNotImplemented = "not_implemented"

// SalesPerformanceResponse compares current and previous calendar-month
// revenue, excluding cancelled orders
type SalesPerformanceResponse struct {
	CurrentMonthRevenue  decimal.Decimal `json:"current_month_revenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previous_month_revenue"`
	GrowthRate           decimal.Decimal `json:"growth_rate"`
	Trend                string          `json:"trend"`
}

// CustomerMetricsResponse counts distinct customers by order email
type CustomerMetricsResponse struct {
	TotalCustomers        int64  `json:"total_customers"`
	NewCustomersThisMonth int64  `json:"new_customers_this_month"`
	RetentionRate         string `json:"retention_rate"`
}

// InventoryHealthResponse summarizes catalog stock levels
type InventoryHealthResponse struct {
	ActiveProducts int64  `json:"active_products"`
	LowStockItems  int64  `json:"low_stock_items"`
	TurnoverRate   string `json:"turnover_rate"`
}

// ChatAnalyticsResponse counts support conversations
type ChatAnalyticsResponse struct {
	TotalConversations int64 `json:"total_conversations"`
	ConversationsToday int64 `json:"conversations_today"`
}

// FullReportResponse composes all business report sections
type FullReportResponse struct {
	SalesPerformance *SalesPerformanceResponse `json:"sales_performance"`
	CustomerMetrics  *CustomerMetricsResponse  `json:"customer_metrics"`
	InventoryHealth  *InventoryHealthResponse  `json:"inventory_health"`
	ChatAnalytics    *ChatAnalyticsResponse    `json:"chat_analytics"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

// InsightResponse is a single AI-generated business recommendation
type InsightResponse struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Action      string  `json:"action"`
}

// InsightsResponse wraps the generated insight list
type InsightsResponse struct {
	Insights    []InsightResponse `json:"insights"`
	GeneratedAt time.Time         `json:"generated_at"`
}
