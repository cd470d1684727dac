package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteen/notify-server/config"
)

// CredentialsHandler serves the static third-party client configuration
// consumed by the frontend. No logic beyond reflecting config.
type CredentialsHandler struct {
	firebase config.FirebaseConfig
}

func NewCredentialsHandler(firebase config.FirebaseConfig) *CredentialsHandler {
	return &CredentialsHandler{firebase: firebase}
}

func (h *CredentialsHandler) GetFirebaseCredentials(c *gin.Context) {
	c.JSON(http.StatusOK, h.firebase)
}
