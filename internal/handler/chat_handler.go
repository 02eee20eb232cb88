package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diulabs/admission-api/internal/service"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
	"github.com/diulabs/admission-api/pkg/response"
)

// ChatRequest is the FAQ chat payload. SessionID is carried for client-side
// conversation grouping only.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatHandler exposes the FAQ matcher.
type ChatHandler struct {
	chat    *service.ChatService
	metrics *service.MetricsService
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(chat *service.ChatService, metrics *service.MetricsService) *ChatHandler {
	return &ChatHandler{chat: chat, metrics: metrics}
}

// Chat godoc
// @Summary Answer an FAQ question
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body ChatRequest true "Chat message"
// @Success 200 {object} response.Envelope
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	start := time.Now()
	reply, err := h.chat.Match(c.Request.Context(), req.Message)
	h.metrics.ObserveEngineEvaluation("chat", time.Since(start))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reply, nil)
}
