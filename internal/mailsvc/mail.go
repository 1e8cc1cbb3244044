package mailsvc

import (
	"context"
	"net/mail"
)

type Message struct {
	To      []mail.Address
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the SendGrid mailer when an API key is set and the console
// mailer otherwise.
func New(apiKey, from, appName string, log Logger) Mailer {
	if apiKey == "" {
		return NewConsole(from, appName, log)
	}
	return NewSendgrid(apiKey, from, appName, log)
}

// Logger is the subset of logsvc.Logger the mailers need.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
