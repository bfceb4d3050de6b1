package services

import (
	"github.com/SshartakK/AssignMate/app/config"
)

// Message is a plain-text outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// EmailService dispatches outbound mail. Sending is synchronous with the
// request; a failure is terminal for that request.
type EmailService interface {
	Send(msg Message) error
}

// NewEmailService returns the sendgrid service when an API key is
// configured, otherwise the console service.
func NewEmailService() EmailService {
	cfg := config.AppConfig.Email
	if cfg.SendgridKey != "" {
		return NewSendgridService(cfg)
	}
	return NewConsoleService(cfg)
}
