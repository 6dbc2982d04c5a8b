package mail

import (
	"gopkg.in/mail.v2"
)

// Sender delivers notification mail. Alert and summary bodies are composed
// upstream; messages carry an HTML part, a plain-text part, or both.
type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string) error {
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.AddAlternative("text/plain", textBody)
	}
	if htmlBody != "" {
		m.SetBody("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
