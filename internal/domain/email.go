package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BroadcastEmailData holds data for the broadcast notification email.
type BroadcastEmailData struct {
	Title    string
	Body     string
	FromYear int
	ToYear   int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendBroadcastNotification(ctx context.Context, to string, data *BroadcastEmailData) error
}
