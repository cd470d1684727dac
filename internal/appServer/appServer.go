// launching the server, scheduler and mail transport
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/volunteen/notify-server/config"
	"github.com/volunteen/notify-server/internal/llm"
	"github.com/volunteen/notify-server/internal/mailer"
	"github.com/volunteen/notify-server/internal/scheduler"
	"github.com/volunteen/notify-server/internal/service"
	"github.com/volunteen/notify-server/internal/transport"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sender := mailer.NewSender(cfg)

	// Scheduled reminders carry pre-rendered fields; execution re-runs
	// the same compose-and-deliver path as an immediate send.
	sendReminder := func(recipient, subject, body string) error {
		email, err := mailer.Compose(cfg.Sender.Name, cfg.Sender.Address, recipient, subject, body)
		if err != nil {
			return err
		}
		return sender.Deliver(email)
	}

	reminderScheduler := scheduler.New(sendReminder, cfg.Scheduler.TickInterval)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go reminderScheduler.Start(schedulerCtx)

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize completion client: %s", err.Error())
	}

	emailUseCase := service.NewEmailUseCase(sender, reminderScheduler,
		cfg.Sender.Name, cfg.Sender.Address, cfg.Scheduler.ReminderHour)
	chatbotUseCase := service.NewChatbotUseCase(llmClient)

	emailHandler := transport.NewEmailHandler(emailUseCase)
	chatbotHandler := transport.NewChatbotHandler(chatbotUseCase)
	credentialsHandler := transport.NewCredentialsHandler(cfg.Firebase)

	routes := transport.InitRoutes(emailHandler, chatbotHandler, credentialsHandler, reminderScheduler)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	stopScheduler()

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
