package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/internal/metrics"
	"github.com/pageza/munchai/backend/internal/middleware"
	"github.com/pageza/munchai/backend/internal/service"
)

// ChatFailedMessage is returned to the caller whenever a chat request fails.
// Details are only logged.
const ChatFailedMessage = "Sorry, something went wrong while finding recipes. Please try again."

// ChatHandler handles chat requests
type ChatHandler struct {
	chat service.IChatService
	log  *zap.Logger
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(chat service.IChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat: chat,
		log:  log,
	}
}

// RegisterRoutes registers the chat route behind the given middleware
func (h *ChatHandler) RegisterRoutes(router gin.IRoutes, mw ...gin.HandlerFunc) {
	router.POST("/chat", append(mw, h.Chat)...)
}

// Chat answers a user message with recipe recommendations
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("invalid chat request: %w", err))
		return
	}

	response, err := h.chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}

	metrics.ChatRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
	})
}

func (h *ChatHandler) fail(c *gin.Context, err error) {
	metrics.ChatRequests.WithLabelValues(metrics.OutcomeError).Inc()
	h.log.Error("Chat request failed",
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{
		Success: false,
		Error:   ChatFailedMessage,
	})
}
