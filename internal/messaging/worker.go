package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"eventboard/internal/domain"
)

// startDateFormat is how event start times appear in confirmation emails.
const startDateFormat = "Mon, 2 Jan 2006 15:04 MST"

// RegistrationWorker consumes registration messages and sends confirmation
// emails for each one.
type RegistrationWorker struct {
	emailService domain.EmailService
	logger       *slog.Logger
}

func NewRegistrationWorker(emailService domain.EmailService, logger *slog.Logger) *RegistrationWorker {
	return &RegistrationWorker{
		emailService: emailService,
		logger:       logger,
	}
}

// Handle decodes one queue message and sends the confirmation email. Malformed
// messages are dropped rather than requeued, since redelivery cannot fix them.
func (w *RegistrationWorker) Handle(body []byte) error {
	var msg domain.RegistrationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		w.logger.Error("dropping malformed registration message", "error", err)
		return nil
	}

	data := &domain.RegistrationConfirmedEmailData{
		Email:      msg.UserEmail,
		Name:       msg.UserName,
		EventTitle: msg.EventTitle,
		EventSlug:  msg.EventSlug,
		EventCity:  msg.EventCity,
		StartDate:  msg.StartDate.Format(startDateFormat),
	}
	if err := w.emailService.SendRegistrationConfirmed(context.Background(), data); err != nil {
		return fmt.Errorf("failed to send registration confirmation for %s: %w", msg.RegistrationID, err)
	}
	return nil
}
