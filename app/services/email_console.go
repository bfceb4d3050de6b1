package services

import (
	"log"
	"sync"

	"github.com/SshartakK/AssignMate/app/config"
)

// consoleService logs messages instead of dispatching them. Used in
// development when no sendgrid key is configured, and by tests via Sent.
type consoleService struct {
	from string

	mu   sync.Mutex
	sent []Message
}

var _ EmailService = (*consoleService)(nil)

func NewConsoleService(cfg config.EmailConfig) *consoleService {
	return &consoleService{from: cfg.From}
}

func (svc *consoleService) Send(msg Message) error {
	svc.mu.Lock()
	svc.sent = append(svc.sent, msg)
	svc.mu.Unlock()

	log.Printf("email (console): from=%s to=%s subject=%q\n%s", svc.from, msg.To, msg.Subject, msg.Body)
	return nil
}

// Sent returns a copy of every message sent so far.
func (svc *consoleService) Sent() []Message {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]Message, len(svc.sent))
	copy(out, svc.sent)
	return out
}
