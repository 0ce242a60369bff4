package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phetoho/backend/internal/domain/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormChatLogRepository_Append(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormChatLogRepository(db)

	entry, err := chat.NewLogEntry("customer1", "Hello", "Hi there!")
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "chat_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, uint(1), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormChatLogRepository_FindRecent(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormChatLogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "message", "response", "sentiment", "created_at"}).
		AddRow(3, "customer3", "What is your return policy?", "We offer a 30-day return policy.", "", time.Now()).
		AddRow(2, "customer2", "Can you track my package?", "Of course!", "", time.Now().Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "chat_logs" ORDER BY created_at DESC LIMIT .*`).
		WillReturnRows(rows)

	entries, err := repo.FindRecent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(3), entries[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
