package persistence

import (
	"context"

	"github.com/phetoho/backend/internal/domain/chat"
	"gorm.io/gorm"
)

// GormChatLogRepository implements chat.LogRepository using GORM
type GormChatLogRepository struct {
	db *gorm.DB
}

// NewGormChatLogRepository creates a new GormChatLogRepository
func NewGormChatLogRepository(db *gorm.DB) *GormChatLogRepository {
	return &GormChatLogRepository{db: db}
}

// Append inserts a log entry
func (r *GormChatLogRepository) Append(ctx context.Context, entry *chat.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindRecent returns up to limit entries, newest first
func (r *GormChatLogRepository) FindRecent(ctx context.Context, limit int) ([]chat.LogEntry, error) {
	var entries []chat.LogEntry
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
