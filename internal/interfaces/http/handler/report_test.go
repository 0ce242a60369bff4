package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reportapp "github.com/phetoho/backend/internal/application/report"
	"github.com/phetoho/backend/internal/domain/report"
)

type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) MonthlyRevenue(ctx context.Context, month report.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAnalyticsRepository) DistinctCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) DistinctCustomersInMonth(ctx context.Context, month report.Month) (int64, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) ActiveProductCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) LowStockCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) ChatLogCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) ChatLogCountToday(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) NonCancelledOrderCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAnalyticsRepository) TopProducts(ctx context.Context, limit int) ([]report.ProductOrderCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ProductOrderCount), args.Error(1)
}

type mockInsightGenerator struct {
	mock.Mock
}

func (m *mockInsightGenerator) GenerateInsights(ctx context.Context, snapshot report.BusinessSnapshot) ([]report.Insight, error) {
	args := m.Called(ctx, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Insight), args.Error(1)
}

func newReportTestServer(analytics report.AnalyticsRepository, insights report.InsightGenerator) *gin.Engine {
	engine := gin.New()
	service := reportapp.NewReportService(analytics, insights, zap.NewNop())
	NewReportHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestReportHandlerFullReport(t *testing.T) {
	analytics := new(mockAnalyticsRepository)
	analytics.On("MonthlyRevenue", mock.Anything, mock.Anything).Return(decimal.NewFromInt(1000), nil)
	analytics.On("TopProducts", mock.Anything, mock.Anything).Return([]report.ProductOrderCount{
		{ProductID: 1, ProductName: "Wireless Headphones", OrderCount: 4},
	}, nil)
	analytics.On("DistinctCustomers", mock.Anything).Return(int64(12), nil)
	analytics.On("DistinctCustomersInMonth", mock.Anything, mock.Anything).Return(int64(4), nil)
	analytics.On("ActiveProductCount", mock.Anything).Return(int64(6), nil)
	analytics.On("LowStockCount", mock.Anything).Return(int64(2), nil)
	analytics.On("ChatLogCount", mock.Anything).Return(int64(30), nil)
	analytics.On("ChatLogCountToday", mock.Anything).Return(int64(3), nil)

	engine := newReportTestServer(analytics, new(mockInsightGenerator))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Contains(t, data, "sales_performance")
	assert.Contains(t, data, "customer_metrics")
	assert.Contains(t, data, "inventory_health")
	assert.Contains(t, data, "chat_analytics")
}

func TestReportHandlerFullReportRepositoryFailure(t *testing.T) {
	analytics := new(mockAnalyticsRepository)
	analytics.On("MonthlyRevenue", mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("connection refused"))

	engine := newReportTestServer(analytics, new(mockInsightGenerator))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReportHandlerInsights(t *testing.T) {
	analytics := new(mockAnalyticsRepository)
	analytics.On("NonCancelledOrderCount", mock.Anything).Return(int64(8), nil)
	analytics.On("TotalRevenue", mock.Anything).Return(decimal.NewFromInt(800), nil)
	analytics.On("DistinctCustomers", mock.Anything).Return(int64(5), nil)
	analytics.On("TopProducts", mock.Anything, 3).Return([]report.ProductOrderCount{
		{ProductID: 1, ProductName: "Wireless Headphones", OrderCount: 4},
	}, nil)

	insights := new(mockInsightGenerator)
	insights.On("GenerateInsights", mock.Anything, mock.Anything).Return([]report.Insight{
		{Type: "sales", Title: "Push headphones", Description: "Top seller", Confidence: 0.9},
	}, nil)

	engine := newReportTestServer(analytics, insights)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/insights", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	list := data["insights"].([]interface{})
	require.Len(t, list, 1)
}

func TestReportHandlerInsightsGeneratorDown(t *testing.T) {
	analytics := new(mockAnalyticsRepository)
	analytics.On("NonCancelledOrderCount", mock.Anything).Return(int64(8), nil)
	analytics.On("TotalRevenue", mock.Anything).Return(decimal.NewFromInt(800), nil)
	analytics.On("DistinctCustomers", mock.Anything).Return(int64(5), nil)
	analytics.On("TopProducts", mock.Anything, 3).Return([]report.ProductOrderCount{}, nil)

	insights := new(mockInsightGenerator)
	insights.On("GenerateInsights", mock.Anything, mock.Anything).
		Return(nil, errors.New("rate limited"))

	engine := newReportTestServer(analytics, insights)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/insights", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Empty(t, data["insights"])
}
