package chat

import (
	"time"

	"github.com/phetoho/backend/internal/domain/chat"
)

// ChatRequest is an incoming customer message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// ChatResponse is the assistant's reply
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// LogEntryResponse is the admin view of a recorded chat exchange
type LogEntryResponse struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Sentiment string    `json:"sentiment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLogEntryResponse converts a chat log entry to its admin view
func ToLogEntryResponse(entry *chat.LogEntry) *LogEntryResponse {
	return &LogEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Message:   entry.Message,
		Response:  entry.Response,
		Sentiment: entry.Sentiment,
		CreatedAt: entry.CreatedAt,
	}
}
