package persistence

import (
	"testing"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/phetoho/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := newSQLiteDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"products", "orders", "chat_logs", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := newSQLiteDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var products int64
	require.NoError(t, db.Model(&catalog.Product{}).Count(&products).Error)
	assert.Equal(t, int64(6), products)

	var orders int64
	require.NoError(t, db.Model(&order.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(4), orders)
}
