package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"planiftchop/internal/config"

	"github.com/jordan-wright/email"
)

// SMTPNotifier sends multipart emails through a plain SMTP relay.
type SMTPNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
	addr     string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

func (n *SMTPNotifier) Name() string { return "smtp" }

// Send delivers the report to all recipients in a single message.
// The context is not honored by net/smtp; it is accepted for interface
// symmetry with the API binding.
func (n *SMTPNotifier) Send(_ context.Context, recipients []string, subject, text, html string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("smtp: no recipients")
	}

	e := email.NewEmail()
	e.From = n.from
	e.To = recipients
	e.Subject = subject
	e.Text = []byte(text)
	e.HTML = []byte(html)

	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.password, n.host)
	}
	if err := e.Send(n.addr, auth); err != nil {
		return fmt.Errorf("smtp: send: %w", err)
	}
	return nil
}
