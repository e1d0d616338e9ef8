package dispatch

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
)

// SMTPEmailSender delivers email over a plain SMTP relay.
type SMTPEmailSender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPEmailSender creates a new SMTPEmailSender.
func NewSMTPEmailSender(host, port, username, password, from string) *SMTPEmailSender {
	return &SMTPEmailSender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
	}
}

// Send delivers one email. The context only bounds the attempt as a whole;
// net/smtp has no per-operation deadline, so callers should keep their own
// timeout around Send.
func (s *SMTPEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		s.From, to, subject, body))

	addr := net.JoinHostPort(s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	if err := smtp.SendMail(addr, auth, s.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}
