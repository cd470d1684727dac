package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/volunteen/notify-server/internal/scheduler"
	"github.com/volunteen/notify-server/internal/transport/middleware"
)

func InitRoutes(emailHandler *EmailHandler, chatbotHandler *ChatbotHandler, credentialsHandler *CredentialsHandler, sched *scheduler.Scheduler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// The frontend is served from another origin; the whole API is open
	// to cross-origin calls, matching the deployed setup.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.POST("/send-email", emailHandler.SendEmail)
	router.GET("/get-firebase-credentials", credentialsHandler.GetFirebaseCredentials)
	router.POST("/generate-chatbot-response", chatbotHandler.GenerateResponse)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"service":           "notify-server",
			"pending_reminders": sched.Pending(),
			"timestamp":         time.Now().Format(time.RFC3339),
		})
	})

	return router
}
