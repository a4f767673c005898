package service

import (
	"fmt"

	"anoa.com/classsite/internal/config"
	"anoa.com/classsite/internal/model"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the new-contact-message notification. Implementations are
// optional; ContactService nil-checks.
type Mailer interface {
	SendContactNotification(msg *model.ContactMessage) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPMailer returns nil when SMTP or the notify address is not
// configured, which disables outbound mail.
func NewSMTPMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" || cfg.ContactNotifyEmail == "" {
		return nil
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPUser,
		to:     cfg.ContactNotifyEmail,
	}
}

func (m *smtpMailer) SendContactNotification(msg *model.ContactMessage) error {
	subject := "New contact message"
	if msg.Subject != nil && *msg.Subject != "" {
		subject = "New contact message: " + *msg.Subject
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", subject)
	mail.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	return m.dialer.DialAndSend(mail)
}
