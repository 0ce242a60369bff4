package report

import (
	"context"
	"time"

	"github.com/phetoho/backend/internal/domain/report"
	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const topProductLimit = 3

// ReportService composes read-only business reports from order, catalog and
// chat aggregates
type ReportService struct {
	analytics report.AnalyticsRepository
	insights  report.InsightGenerator
	logger    *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(
	analytics report.AnalyticsRepository,
	insights report.InsightGenerator,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		analytics: analytics,
		insights:  insights,
		logger:    logger,
	}
}

// SalesPerformance compares current and previous calendar-month revenue.
// Growth is zero when there is no previous-month baseline.
func (s *ReportService) SalesPerformance(ctx context.Context) (*SalesPerformanceResponse, error) {
	current := report.CurrentMonth(time.Now())
	previous := current.Previous()

	currentRevenue, err := s.analytics.MonthlyRevenue(ctx, current)
	if err != nil {
		return nil, shared.NewPersistenceError("current month revenue", err)
	}
	previousRevenue, err := s.analytics.MonthlyRevenue(ctx, previous)
	if err != nil {
		return nil, shared.NewPersistenceError("previous month revenue", err)
	}

	growth := decimal.Zero
	if previousRevenue.IsPositive() {
		growth = currentRevenue.Sub(previousRevenue).
			Div(previousRevenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	trend := report.TrendStable
	switch {
	case growth.IsPositive():
		trend = report.TrendUp
	case growth.IsNegative():
		trend = report.TrendDown
	}

	return &SalesPerformanceResponse{
		CurrentMonthRevenue:  currentRevenue,
		PreviousMonthRevenue: previousRevenue,
		GrowthRate:           growth,
		Trend:                string(trend),
	}, nil
}

// CustomerMetrics counts distinct customers by order email
func (s *ReportService) CustomerMetrics(ctx context.Context) (*CustomerMetricsResponse, error) {
	total, err := s.analytics.DistinctCustomers(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("customer count", err)
	}
	thisMonth, err := s.analytics.DistinctCustomersInMonth(ctx, report.CurrentMonth(time.Now()))
	if err != nil {
		return nil, shared.NewPersistenceError("monthly customer count", err)
	}

	return &CustomerMetricsResponse{
		TotalCustomers:        total,
		NewCustomersThisMonth: thisMonth,
		RetentionRate:         MetricNotImplemented,
	}, nil
}

// InventoryHealth summarizes catalog stock levels
func (s *ReportService) InventoryHealth(ctx context.Context) (*InventoryHealthResponse, error) {
	active, err := s.analytics.ActiveProductCount(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("active product count", err)
	}
	lowStock, err := s.analytics.LowStockCount(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("low stock count", err)
	}

	return &InventoryHealthResponse{
		ActiveProducts: active,
		LowStockItems:  lowStock,
		TurnoverRate:   MetricNotImplemented,
	}, nil
}

// ChatAnalytics counts support conversations
func (s *ReportService) ChatAnalytics(ctx context.Context) (*ChatAnalyticsResponse, error) {
	total, err := s.analytics.ChatLogCount(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("chat log count", err)
	}
	today, err := s.analytics.ChatLogCountToday(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("chat log count today", err)
	}

	return &ChatAnalyticsResponse{
		TotalConversations: total,
		ConversationsToday: today,
	}, nil
}

// FullReport composes all report sections with a generation timestamp
func (s *ReportService) FullReport(ctx context.Context) (*FullReportResponse, error) {
	sales, err := s.SalesPerformance(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.CustomerMetrics(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.InventoryHealth(ctx)
	if err != nil {
		return nil, err
	}
	chats, err := s.ChatAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	return &FullReportResponse{
		SalesPerformance: sales,
		CustomerMetrics:  customers,
		InventoryHealth:  inventory,
		ChatAnalytics:    chats,
		GeneratedAt:      time.Now(),
	}, nil
}

// AIInsights gathers a business snapshot and asks the insight generator for
// recommendations. Failures degrade to an empty insight list, never an error.
func (s *ReportService) AIInsights(ctx context.Context) *InsightsResponse {
	response := &InsightsResponse{
		Insights:    []InsightResponse{},
		GeneratedAt: time.Now(),
	}

	snapshot, err := s.businessSnapshot(ctx)
	if err != nil {
		s.logger.Warn("failed to gather business snapshot for insights", zap.Error(err))
		return response
	}

	insights, err := s.insights.GenerateInsights(ctx, *snapshot)
	if err != nil {
		s.logger.Warn("insight generation failed", zap.Error(err))
		return response
	}

	for _, insight := range insights {
		response.Insights = append(response.Insights, InsightResponse{
			Type:        insight.Type,
			Title:       insight.Title,
			Description: insight.Description,
			Confidence:  insight.Confidence,
			Action:      insight.Action,
		})
	}
	return response
}

func (s *ReportService) businessSnapshot(ctx context.Context) (*report.BusinessSnapshot, error) {
	orders, err := s.analytics.NonCancelledOrderCount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.analytics.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.analytics.DistinctCustomers(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.analytics.TopProducts(ctx, topProductLimit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(top))
	for _, p := range top {
		names = append(names, p.ProductName)
	}

	return &report.BusinessSnapshot{
		Orders:      orders,
		Revenue:     revenue,
		Customers:   customers,
		TopProducts: names,
	}, nil
}
