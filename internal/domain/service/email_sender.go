package service

import "context"

// EmailSender delivers transactional mail. Implementations may be
// unconfigured in development, in which case sends are logged and dropped.
type EmailSender interface {
	// SendVerificationEmail sends the email-confirmation link for a pending identity.
	SendVerificationEmail(ctx context.Context, to, token string) error

	// IsConfigured reports whether the sender has a working transport.
	IsConfigured() bool
}
