package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phetoho/backend/internal/domain/order"
	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderColumns() []string {
	return []string{
		"id", "customer_id", "customer_name", "customer_email",
		"items", "total", "status", "created_at", "updated_at",
	}
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds existing order and decodes items", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		rows := sqlmock.NewRows(orderColumns()).
			AddRow("ORD-001", "customer1", "John Doe", "john@example.com",
				`[{"id": 1, "quantity": 2}]`, decimal.NewFromFloat(599.98),
				"processing", time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ORD-001", 1).
			WillReturnRows(rows)

		o, err := repo.FindByID(context.Background(), "ORD-001")

		require.NoError(t, err)
		assert.Equal(t, "ORD-001", o.ID)
		assert.Equal(t, order.StatusProcessing, o.Status)
		require.Len(t, o.Items, 1)
		assert.Equal(t, uint(1), o.Items[0].ProductID)
		assert.Equal(t, 2, o.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ORD-MISSING", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		o, err := repo.FindByID(context.Background(), "ORD-MISSING")

		assert.Nil(t, o)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormOrderRepository_FindRecent(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(db)

	rows := sqlmock.NewRows(orderColumns()).
		AddRow("ORD-004", "customer4", "Alice Brown", "alice@example.com",
			`[{"id": 5, "quantity": 1}]`, decimal.NewFromFloat(79.99),
			"pending", time.Now(), time.Now()).
		AddRow("ORD-003", "customer3", "Bob Johnson", "bob@example.com",
			`[{"id": 3, "quantity": 1}]`, decimal.NewFromFloat(449.99),
			"delivered", time.Now().Add(-time.Hour), time.Now())

	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY created_at DESC LIMIT .*`).
		WillReturnRows(rows)

	orders, err := repo.FindRecent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-004", orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_ExistsByID(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE id = \$1`).
		WithArgs("ORD-001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByID(context.Background(), "ORD-001")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_CountByCustomer(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE customer_id = \$1`).
		WithArgs("customer1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByCustomer(context.Background(), "customer1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGormOrderRepository_Create(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(db)

	o, err := order.NewOrder("ORD-AB12CD34",
		order.CustomerInfo{Name: "Jane Smith", Email: "jane@example.com"},
		order.ItemList{{ProductID: 1, Quantity: 2}},
		decimal.NewFromFloat(49.98))
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Aggregate(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(db)

	rows := sqlmock.NewRows([]string{"total_orders", "non_cancelled", "revenue", "orders_today"}).
		AddRow(4, 3, decimal.NewFromFloat(1329.96), 1)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\) AS total_orders`).
		WillReturnRows(rows)

	stats, err := repo.Aggregate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.NonCancelled)
	assert.Equal(t, int64(1), stats.OrdersToday)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromFloat(1329.96)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
