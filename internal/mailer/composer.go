package mailer

import (
	"github.com/volunteen/notify-server/internal/entity"
)

// Compose builds a message from the configured sender identity and the
// caller-supplied fields. It is pure and performs no I/O. Address syntax
// is not checked here; a malformed recipient is rejected by the relay.
func Compose(senderName, senderAddress, recipient, subject, body string) (*entity.Email, error) {
	if recipient == "" {
		return nil, entity.ErrEmptyRecipient
	}
	if subject == "" {
		return nil, entity.ErrEmptySubject
	}
	if body == "" {
		return nil, entity.ErrEmptyBody
	}

	return &entity.Email{
		SenderName:    senderName,
		SenderAddress: senderAddress,
		Recipient:     recipient,
		Subject:       subject,
		Body:          body,
	}, nil
}
