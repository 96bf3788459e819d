// Package email delivers transactional mail over SMTP.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"net/url"
	"strings"

	"unigate/config"
	"unigate/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpSender implements service.EmailSender over a plain SMTP connection with
// STARTTLS. When SMTP is unconfigured the sender stays constructible so the
// account flows can log the token instead of failing signup.
type smtpSender struct {
	host          string
	port          int
	username      string
	password      string
	from          string
	verifyBaseURL string
	logger        *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	sender := &smtpSender{logger: logger}
	if cfg.SMTP != nil {
		sender.host = cfg.SMTP.Host
		sender.port = cfg.SMTP.Port
		sender.username = cfg.SMTP.Username
		sender.password = cfg.SMTP.Password
		sender.from = cfg.SMTP.From
		sender.verifyBaseURL = cfg.SMTP.VerifyBaseURL
	}

	return sender
}

// IsConfigured reports whether the sender can actually deliver mail.
func (s *smtpSender) IsConfigured() bool {
	return s.host != "" && s.from != ""
}

// SendVerificationEmail sends the email-verification link for a fresh signup
// or a resend request.
func (s *smtpSender) SendVerificationEmail(ctx context.Context, to, token string) error {
	if !s.IsConfigured() {
		// Development fallback: surface the token in the logs so the flow can
		// still be exercised without a mail relay.
		s.logger.InfoContext(ctx, "SMTP not configured, logging verification token",
			slog.String("to", to),
			slog.String("token", token),
		)

		return nil
	}

	link := fmt.Sprintf("%s?token=%s", s.verifyBaseURL, url.QueryEscape(token))
	subject := "Verify your email address"
	body := fmt.Sprintf(
		"Welcome!\r\n\r\n"+
			"Please confirm your email address by opening the link below:\r\n\r\n"+
			"%s\r\n\r\n"+
			"If you did not create an account, you can safely ignore this message.\r\n",
		link,
	)

	if err := s.send(ctx, to, subject, body); err != nil {
		return errors.Wrap(err, "failed to send verification email")
	}

	s.logger.InfoContext(ctx, "Verification email sent", slog.String("to", to))

	return nil
}

// send delivers a single message over SMTP with STARTTLS.
func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to connect to SMTP server")
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "failed to open SMTP session")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: s.host}
		if err := client.StartTLS(tlsConfig); err != nil {
			return errors.Wrap(err, "failed to start TLS")
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "SMTP authentication failed")
		}
	}

	if err := client.Mail(s.from); err != nil {
		return errors.Wrap(err, "failed to set sender")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "failed to set recipient")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "failed to open data writer")
	}
	if _, err := w.Write([]byte(message.String())); err != nil {
		return errors.Wrap(err, "failed to write email body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to close data writer")
	}

	return client.Quit()
}
