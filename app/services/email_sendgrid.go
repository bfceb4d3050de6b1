package services

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/SshartakK/AssignMate/app/config"
)

type sendgridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ EmailService = (*sendgridService)(nil)

func NewSendgridService(cfg config.EmailConfig) EmailService {
	return &sendgridService{
		client: sendgrid.NewSendClient(cfg.SendgridKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.From),
	}
}

func (svc *sendgridService) Send(msg Message) error {
	m := sgmail.NewSingleEmail(svc.from, msg.Subject, sgmail.NewEmail("", msg.To), msg.Body, "")
	resp, err := svc.client.Send(m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
