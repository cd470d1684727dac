package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/volunteen/notify-server/internal/entity"
	"github.com/volunteen/notify-server/internal/mailer"
)

const (
	reminderDateLayout   = "2006-01-02"
	reminderSubjectStart = "Event Reminder: "
	reminderBodyPreamble = "Hello,\n\nThis is a reminder for the upcoming event:\n\n"
	reminderBodyClosing  = "\n\nThank you for volunteering!"
)

type emailUseCase struct {
	sender        mailer.Sender
	scheduler     ReminderScheduler
	senderName    string
	senderAddress string
	reminderHour  int
}

func NewEmailUseCase(sender mailer.Sender, scheduler ReminderScheduler, senderName, senderAddress string, reminderHour int) EmailUseCase {
	return &emailUseCase{
		sender:        sender,
		scheduler:     scheduler,
		senderName:    senderName,
		senderAddress: senderAddress,
		reminderHour:  reminderHour,
	}
}

// SendEmail delivers the immediate message synchronously and, only on
// success, registers a best-effort reminder job. A failure anywhere in
// the reminder stage is logged and never changes the caller's result.
func (uc *emailUseCase) SendEmail(ctx context.Context, req *entity.SendEmailRequest) error {
	email, err := mailer.Compose(uc.senderName, uc.senderAddress, req.Recipient, req.Subject, req.BodyText)
	if err != nil {
		return err
	}

	if err := uc.sender.Deliver(email); err != nil {
		return err
	}

	if req.Reminder != nil && req.Reminder.Send {
		if err := uc.scheduleReminder(req); err != nil {
			logrus.Errorf("%v", err)
		}
	}

	return nil
}

// scheduleReminder derives the reminder job from an already-sent request
// and registers it to fire on the requested date at the fixed hour.
func (uc *emailUseCase) scheduleReminder(req *entity.SendEmailRequest) error {
	date, err := time.ParseInLocation(reminderDateLayout, req.Reminder.ReminderDate, time.Local)
	if err != nil {
		return &entity.ScheduleError{Err: fmt.Errorf("invalid reminder date %q: %w", req.Reminder.ReminderDate, err)}
	}

	runAt := time.Date(date.Year(), date.Month(), date.Day(), uc.reminderHour, 0, 0, 0, time.Local)

	jobID := uc.scheduler.Schedule(runAt,
		req.Recipient,
		reminderSubject(req.Subject),
		reminderBody(req.BodyText),
	)

	logrus.WithFields(logrus.Fields{
		"job_id": jobID,
		"run_at": runAt.Format(time.RFC3339),
	}).Info("Reminder email scheduled")

	return nil
}

// reminderSubject strips one leading "<prefix>: " segment, then
// re-prefixes with the reminder marker.
func reminderSubject(subject string) string {
	title := subject
	if i := strings.Index(subject, ": "); i >= 0 {
		title = subject[i+2:]
	}
	return reminderSubjectStart + title
}

func reminderBody(body string) string {
	return reminderBodyPreamble + body + reminderBodyClosing
}
