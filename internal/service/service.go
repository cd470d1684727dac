package service

import (
	"context"
	"time"

	"github.com/volunteen/notify-server/internal/entity"
)

type EmailUseCase interface {
	SendEmail(ctx context.Context, req *entity.SendEmailRequest) error
}

type ChatbotUseCase interface {
	GenerateResponse(ctx context.Context, req *entity.ChatbotRequest) (string, error)
}

// ReminderScheduler is the registration half of the scheduler; the
// returned handle is fire-and-forget.
type ReminderScheduler interface {
	Schedule(runAt time.Time, recipient, subject, body string) string
}
