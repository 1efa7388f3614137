package email

import (
	"gopkg.in/gomail.v2"

	"provider_map/internal/config"
)

// Sender отправляет письма. Интерфейс нужен, чтобы в тестах и при
// отсутствии SMTP-настроек подставлять no-op реализацию.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopSender используется, когда SMTP не настроен
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error { return nil }

// NewSender выбирает реализацию по конфигу
func NewSender(cfg *config.Config) Sender {
	if cfg.Email.SMTPHost == "" {
		return NoopSender{}
	}
	return NewSMTPSender(cfg)
}
