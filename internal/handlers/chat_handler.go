package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "serenai/internal/errors"
	"serenai/internal/services"
)

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the chat request payload
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat classifies the message and returns a reply and tone
// @Summary     Chat with the mom persona
// @Description Classify the message into an emotional intent and return a scripted reply
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Chat message"
// @Success     200 {object} services.ChatResponse "Reply and tone"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.chatService.Respond(userID, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
