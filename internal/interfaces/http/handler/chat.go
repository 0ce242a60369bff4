package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	chatapp "github.com/phetoho/backend/internal/application/chat"
)

const defaultChatLogLimit = 50

// ChatHandler handles support chat endpoints
type ChatHandler struct {
	BaseHandler
	chatService *chatapp.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *chatapp.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes mounts chat routes on the given group
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.Send)
	rg.GET("/admin/chats", h.ListLogs)
}

// Send godoc
// @Summary      Send a chat message
// @Description  Forwards a customer message to the support assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body chatapp.ChatRequest true "Chat message"
// @Success      200 {object} dto.Response{data=chatapp.ChatResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatapp.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.chatService.HandleMessage(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListLogs godoc
// @Summary      List chat logs
// @Description  Returns recent chat exchanges, newest first
// @Tags         chat
// @Produce      json
// @Param        limit query int false "Maximum number of entries" default(50)
// @Success      200 {object} dto.Response{data=[]chatapp.LogEntryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/chats [get]
func (h *ChatHandler) ListLogs(c *gin.Context) {
	limit := defaultChatLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	logs, err := h.chatService.ListLogs(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
