// Package email sends transactional mail through SMTP.
package email

import (
	"context"
	"crypto/tls"
	"log/slog"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// dialer is satisfied by *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	from   string
	d      dialer
	logger *slog.Logger
}

// NewSMTPSender builds a sender for cfg. Encryption "ssl" dials implicit TLS, "tls"/"starttls" upgrades.
func NewSMTPSender(cfg *config.SMTPConfig, logger *slog.Logger) (*smtpSender, error) {
	if cfg == nil || cfg.Host == "" || cfg.Port == 0 || cfg.SenderEmail == "" {
		return nil, errors.New("SMTP host, port, and sender email must be configured")
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	tlsConfig := &tls.Config{
		ServerName:         cfg.Host,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local mail catchers
	}

	switch strings.ToLower(cfg.Encryption) {
	case "ssl":
		d.SSL = true
		d.TLSConfig = tlsConfig
	case "tls", "starttls":
		d.TLSConfig = tlsConfig
	}

	return &smtpSender{from: cfg.SenderEmail, d: d, logger: logger}, nil
}

func (s *smtpSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return errors.New("no recipients provided for email")
	}
	if htmlBody == "" {
		return errors.New("email body must be provided")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.d.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "Email sending cancelled",
			slog.String("subject", subject),
			slog.Any("error", ctx.Err()),
		)

		return errors.Wrap(ctx.Err(), "email sending cancelled or timed out")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send email")
		}
	}

	s.logger.InfoContext(ctx, "Email sent", slog.String("subject", subject), slog.Int("recipients", len(to)))

	return nil
}

// logSender only logs; used when SMTP is not configured.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, to []string, subject, _ string) error {
	s.logger.WarnContext(ctx, "[NoopEmail] SMTP not configured, email dropped",
		slog.String("subject", subject),
		slog.Int("recipients", len(to)),
	)

	return nil
}

// SenderParams holds dependencies for EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender creates an EmailSender based on configuration
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	cfg := params.Config.SMTP
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("SMTP not configured, emails will only be logged")

		return &logSender{logger: params.Logger}, nil
	}

	return NewSMTPSender(cfg, params.Logger)
}

// Module provides the email FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailSender),
)
