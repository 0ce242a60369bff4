package chat

import (
	"context"
	"time"

	"github.com/phetoho/backend/internal/domain/shared"
)

// LogEntry records a single chat exchange. Entries are append-only.
type LogEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:varchar(64)"`
	Message   string `gorm:"type:text;not null"`
	Response  string `gorm:"type:text;not null"`
	Sentiment string `gorm:"type:varchar(20)"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (LogEntry) TableName() string {
	return "chat_logs"
}

// NewLogEntry creates a chat log entry
func NewLogEntry(userID, message, response string) (*LogEntry, error) {
	if message == "" {
		return nil, shared.NewValidationError("Message cannot be empty")
	}
	if response == "" {
		return nil, shared.NewValidationError("Response cannot be empty")
	}
	return &LogEntry{
		UserID:    userID,
		Message:   message,
		Response:  response,
		CreatedAt: time.Now(),
	}, nil
}

// LogRepository defines the persistence interface for chat logs
type LogRepository interface {
	// Append inserts a log entry
	Append(ctx context.Context, entry *LogEntry) error

	// FindRecent returns up to limit entries, newest first
	FindRecent(ctx context.Context, limit int) ([]LogEntry, error)
}

// UserContext is derived purchase history attached to assistant requests for
// personalized responses
type UserContext struct {
	RecentOrders int `json:"recent_orders"`
}

// Assistant is the outbound text-completion boundary. Implementations must be
// treated as unreliable; callers fall back to a canned response on error.
type Assistant interface {
	// ChatResponse generates a reply to a customer message. UserContext may
	// be nil when the caller is anonymous.
	ChatResponse(ctx context.Context, message string, userCtx *UserContext) (string, error)
}
