package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteen/notify-server/internal/entity"
	"github.com/volunteen/notify-server/internal/service"
)

type ChatbotHandler struct {
	service service.ChatbotUseCase
}

func NewChatbotHandler(service service.ChatbotUseCase) *ChatbotHandler {
	return &ChatbotHandler{service: service}
}

// GenerateResponse handles POST /generate-chatbot-response.
func (h *ChatbotHandler) GenerateResponse(c *gin.Context) {
	var req entity.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data."})
		return
	}

	if req.UserText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user text provided."})
		return
	}
	if req.SystemMessage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No system message provided."})
		return
	}

	response, err := h.service.GenerateResponse(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entity.ChatbotResponse{Response: response})
}
