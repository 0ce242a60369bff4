package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phetoho/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAnalyticsRepository_MonthlyRevenue(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAnalyticsRepository(db)

	month := report.Month{Year: 2026, Month: time.August}
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) AS revenue\s+FROM orders\s+WHERE status <> 'cancelled'`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(decimal.NewFromFloat(1249.97)))

	revenue, err := repo.MonthlyRevenue(context.Background(), month)

	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromFloat(1249.97)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAnalyticsRepository_DistinctCustomers(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\("customer_email"\)\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.DistinctCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestGormAnalyticsRepository_LowStockCount(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE active = \$1 AND stock <= min_stock`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.LowStockCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormAnalyticsRepository_TopProducts(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "product_name", "order_count"}).
		AddRow(1, "Premium Wireless Headphones", 2).
		AddRow(3, "Ergonomic Office Chair", 1)

	mock.ExpectQuery(`SELECT p\.id AS product_id, p\.name AS product_name, COUNT\(\*\) AS order_count`).
		WithArgs(3).
		WillReturnRows(rows)

	top, err := repo.TopProducts(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Premium Wireless Headphones", top[0].ProductName)
	assert.Equal(t, int64(2), top[0].OrderCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAnalyticsRepository_FirstItemIDExpr(t *testing.T) {
	db, _, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAnalyticsRepository(db)

	// The mock connection uses the postgres dialector
	assert.Contains(t, repo.firstItemIDExpr(), "::json")
}
