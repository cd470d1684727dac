package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteen/notify-server/internal/entity"
	"github.com/volunteen/notify-server/internal/service"
)

type EmailHandler struct {
	service service.EmailUseCase
}

func NewEmailHandler(service service.EmailUseCase) *EmailHandler {
	return &EmailHandler{service: service}
}

// SendEmail handles POST /send-email. Validation failures are rejected
// before any delivery attempt; delivery failures come back as a server
// error. The reminder outcome never changes the response.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req entity.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields. Must include 'recipient', 'subject', and 'body_text'.",
		})
		return
	}

	if err := h.service.SendEmail(c.Request.Context(), &req); err != nil {
		var transportErr *entity.TransportError
		if errors.As(err, &transportErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to send email: %v", transportErr.Err),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully!"})
}
