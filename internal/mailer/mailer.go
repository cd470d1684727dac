package mailer

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/volunteen/notify-server/config"
	"github.com/volunteen/notify-server/internal/entity"
)

// Sender delivers one composed message per call. Each call opens a
// fresh authenticated session to the relay and tears it down afterwards.
type Sender interface {
	Deliver(email *entity.Email) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

// NewSender builds a sender for the configured relay. The dialer
// upgrades the connection with STARTTLS using the platform trust store
// before authenticating, which is gomail's default on port 587.
func NewSender(cfg *config.Config) Sender {
	logrus.Infof("Initializing mail sender for host %s:%d, user %s",
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username)

	d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	return &smtpSender{dialer: d}
}

// Deliver makes exactly one delivery attempt. There is no retry and no
// connection reuse across calls.
func (s *smtpSender) Deliver(email *entity.Email) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", email.SenderAddress, email.SenderName)
	msg.SetHeader("To", email.Recipient)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return &entity.TransportError{Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"recipient": email.Recipient,
		"subject":   email.Subject,
	}).Info("Email delivered to relay")

	return nil
}
