package email

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	block chan struct{}
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.sent = append(f.sent, m...)

	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSMTPSender_IncompleteConfig(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *config.SMTPConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing host", cfg: &config.SMTPConfig{Port: 587, SenderEmail: "no-reply@example.com"}},
		{name: "missing port", cfg: &config.SMTPConfig{Host: "smtp.example.com", SenderEmail: "no-reply@example.com"}},
		{name: "missing sender", cfg: &config.SMTPConfig{Host: "smtp.example.com", Port: 587}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSMTPSender(tc.cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewSMTPSender_Encryption(t *testing.T) {
	sender, err := NewSMTPSender(&config.SMTPConfig{
		Host: "smtp.example.com", Port: 465, SenderEmail: "no-reply@example.com", Encryption: "SSL",
	}, discardLogger())
	require.NoError(t, err)

	d, ok := sender.d.(*gomail.Dialer)
	require.True(t, ok)
	assert.True(t, d.SSL)
	require.NotNil(t, d.TLSConfig)
	assert.Equal(t, "smtp.example.com", d.TLSConfig.ServerName)
}

func TestSMTPSender_Send(t *testing.T) {
	fake := &fakeDialer{}
	sender := &smtpSender{from: "no-reply@example.com", d: fake, logger: discardLogger()}

	err := sender.Send(context.Background(), []string{"ana@example.com"}, "Recuperación de contraseña", "<p>hola</p>")
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	var buf bytes.Buffer
	_, err = fake.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "To: ana@example.com")
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPSender_SendErrors(t *testing.T) {
	sender := &smtpSender{from: "no-reply@example.com", d: &fakeDialer{err: errors.New("connection refused")}, logger: discardLogger()}

	assert.Error(t, sender.Send(context.Background(), nil, "s", "<p>b</p>"))
	assert.Error(t, sender.Send(context.Background(), []string{"a@example.com"}, "s", ""))
	assert.Error(t, sender.Send(context.Background(), []string{"a@example.com"}, "s", "<p>b</p>"))
}

func TestSMTPSender_SendCancelled(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	sender := &smtpSender{from: "no-reply@example.com", d: &fakeDialer{block: block}, logger: discardLogger()}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := sender.Send(ctx, []string{"a@example.com"}, "s", "<p>b</p>")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewEmailSender_FallsBackToLogSender(t *testing.T) {
	sender, err := NewEmailSender(SenderParams{Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)

	_, ok := sender.(*logSender)
	assert.True(t, ok)
	assert.NoError(t, sender.Send(context.Background(), []string{"a@example.com"}, "s", "b"))
}
