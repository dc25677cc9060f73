package handler

import (
	"net/http"
	"strings"

	"buraq/internal/model"
	"buraq/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles natural-language chat requests
type ChatHandler struct {
	chatService     *service.ChatService
	maxMessageChars int
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, maxMessageChars int) *ChatHandler {
	if maxMessageChars <= 0 {
		maxMessageChars = 500
	}
	return &ChatHandler{
		chatService:     chatService,
		maxMessageChars: maxMessageChars,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Input validation happens here, before the pipeline
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}
	if len(req.Message) > h.maxMessageChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is too long"})
		return
	}

	response, err := h.chatService.Respond(c.Request.Context(), &req)
	if err != nil {
		// Store unavailability is the one unrecoverable condition
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response)
}
