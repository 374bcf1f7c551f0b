package services

import (
	"context"
	"fmt"

	"alumninexus/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendBroadcastNotification sends the broadcast announcement email using the
// "broadcast" template and the given data.
func (s *emailService) SendBroadcastNotification(ctx context.Context, to string, data *domain.BroadcastEmailData) error {
	if data == nil {
		return fmt.Errorf("broadcast email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("broadcast", data)
	if err != nil {
		return fmt.Errorf("failed to render broadcast template: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send broadcast email: %w", err)
	}
	return nil
}
