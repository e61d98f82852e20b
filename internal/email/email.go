package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/dricebeauty/clinic-api/internal/config"
)

// Sender delivers clinic emails. A nil-safe no-op implementation is used
// when SMTP is disabled so callers never branch on configuration.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(cfg config.SMTPConfig) Sender {
	if !cfg.Enabled {
		return &noopSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type noopSender struct{}

func (n *noopSender) Send(to, subject, body string) error { return nil }
