package chat

import (
	"context"

	"github.com/phetoho/backend/internal/domain/chat"
	"github.com/phetoho/backend/internal/domain/order"
	"github.com/phetoho/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// FallbackResponse is returned whenever the assistant cannot produce a reply
const FallbackResponse = "I apologize, but I'm experiencing technical difficulties. Please try again later."

// ChatService handles customer support conversations
type ChatService struct {
	assistant chat.Assistant
	logs      chat.LogRepository
	orders    order.OrderRepository
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	assistant chat.Assistant,
	logs chat.LogRepository,
	orders order.OrderRepository,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		assistant: assistant,
		logs:      logs,
		orders:    orders,
		logger:    logger,
	}
}

// HandleMessage generates a reply to a customer message. Assistant failures
// degrade to a canned apology; the exchange is logged either way.
func (s *ChatService) HandleMessage(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Message == "" {
		return nil, shared.NewValidationError("Message cannot be empty")
	}

	response, err := s.assistant.ChatResponse(ctx, req.Message, s.userContext(ctx, req.UserID))
	if err != nil {
		s.logger.Warn("assistant request failed, using fallback response",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		response = FallbackResponse
	}

	entry, err := chat.NewLogEntry(req.UserID, req.Message, response)
	if err != nil {
		return nil, err
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, shared.NewPersistenceError("append chat log", err)
	}

	return &ChatResponse{
		Response:  response,
		Timestamp: entry.CreatedAt,
	}, nil
}

// userContext derives purchase history for known customers. Lookup failures
// fall back to an anonymous request.
func (s *ChatService) userContext(ctx context.Context, userID string) *chat.UserContext {
	if userID == "" {
		return nil
	}
	count, err := s.orders.CountByCustomer(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load user context for chat",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil
	}
	return &chat.UserContext{RecentOrders: int(count)}
}

// ListLogs returns up to limit chat exchanges, newest first
func (s *ChatService) ListLogs(ctx context.Context, limit int) ([]LogEntryResponse, error) {
	if limit <= 0 {
		return nil, shared.NewValidationError("Limit must be positive")
	}

	entries, err := s.logs.FindRecent(ctx, limit)
	if err != nil {
		return nil, shared.NewPersistenceError("list chat logs", err)
	}

	responses := make([]LogEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *ToLogEntryResponse(&entries[i]))
	}
	return responses, nil
}
