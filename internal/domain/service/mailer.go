// Package service defines the interfaces for outbound collaborators the
// usecase layer talks to.
package service

import "context"

// EmailMessage is a fully rendered transactional email.
type EmailMessage struct {
	To            string
	ReplyTo       string
	Subject       string
	HTMLBody      string
	PlainTextBody string
}

// Mailer dispatches transactional email. Callers treat dispatch as
// best-effort: failures are logged, never surfaced to the submitting
// customer, and never affect the outcome of the submission itself.
type Mailer interface {
	Send(ctx context.Context, message *EmailMessage) error
}
