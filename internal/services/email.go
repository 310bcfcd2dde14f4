package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventboard/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmed sends the registration confirmation email using
// the "registration_confirmed" template.
func (s *emailService) SendRegistrationConfirmed(ctx context.Context, data *domain.RegistrationConfirmedEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmed data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmed", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmed template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration confirmation email: %w", err)
	}
	s.logger.InfoContext(ctx, "registration confirmation sent", "email", data.Email, "event", data.EventSlug)
	return nil
}
