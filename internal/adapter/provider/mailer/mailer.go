// Package mailer delivers verification e-mails over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const dialTimeout = 10 * time.Second

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendFunc func(ctx context.Context, to string, msg []byte) error

// Mailer sends e-mails. With no SMTP host configured it only logs them.
type Mailer struct {
	cfg  Config
	send sendFunc
	log  *slog.Logger
}

// New creates a mailer.
func New(cfg Config, logger *slog.Logger) *Mailer {
	m := &Mailer{cfg: cfg, log: logger.With("adapter", "mailer")}
	if cfg.Host == "" {
		m.send = m.logOnly
	} else {
		m.send = m.sendSMTP
	}
	return m
}

// SendVerification e-mails the verification link to the institutional address.
func (m *Mailer) SendVerification(ctx context.Context, to, link string) error {
	subject := "Verify your institutional e-mail"
	body := fmt.Sprintf(
		"Assalamualaikum,\r\n\r\n"+
			"Open the link below to verify this address. It expires in one hour.\r\n\r\n"+
			"%s\r\n\r\n"+
			"If you did not request this, ignore this e-mail.\r\n", link)

	if err := m.send(ctx, to, buildMessage(m.cfg.From, to, subject, body)); err != nil {
		return fmt.Errorf("send verification e-mail: %w", err)
	}
	m.log.InfoContext(ctx, "verification e-mail sent", slog.String("to", to))
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var msg strings.Builder
	msg.WriteString("From: UniEvent <" + from + ">\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Date: " + time.Now().UTC().Format(time.RFC1123Z) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String())
}

func (m *Mailer) logOnly(ctx context.Context, to string, msg []byte) error {
	m.log.WarnContext(ctx, "smtp not configured, e-mail not delivered",
		slog.String("to", to), slog.Int("bytes", len(msg)))
	return nil
}

func (m *Mailer) sendSMTP(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to smtp server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("start tls: %w", err)
		}
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		if err := client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("start message: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	_ = client.Quit()
	return nil
}
