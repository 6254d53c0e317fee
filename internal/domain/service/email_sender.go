package service

import "context"

// EmailSender dispatches transactional email.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}
