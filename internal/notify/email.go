package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// EmailSender defines the interface for sending emails.
// Implementations can be swapped (SMTP, API providers) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// SMTPConfig holds configuration for the SMTP sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Address  string
	Password string
}

// SMTPSender sends mail over SMTP with implicit TLS, the way the notification
// helper is configured for Gmail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *logging.Logger
}

// NewSMTPSender creates an SMTP email sender. Returns nil when no address is
// configured so callers can fall back to the stub.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) *SMTPSender {
	if cfg.Address == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == 0 {
		cfg.Port = 465
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Address, cfg.Password)
	dialer.SSL = cfg.Port == 465
	return &SMTPSender{dialer: dialer, from: cfg.Address, logger: logger}
}

// Send delivers one message.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("smtp send failed", "error", err, "to", msg.To)
		return fmt.Errorf("notify: smtp send failed: %w", err)
	}

	s.logger.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// StubEmailSender is a no-op sender for testing or when email is disabled.
type StubEmailSender struct {
	logger *logging.Logger
}

// NewStubEmailSender creates a stub email sender that logs but doesn't send.
func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("stub email sender: would send email", "to", msg.To, "subject", msg.Subject)
	return nil
}
