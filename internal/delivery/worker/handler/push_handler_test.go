package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	channel string
	event   string
	payload string
}

type fakeBroadcaster struct {
	events []publishedEvent
	err    error
}

func (f *fakeBroadcaster) Publish(_ context.Context, channelKey, event string, payload any) error {
	if f.err != nil {
		return f.err
	}
	raw, _ := payload.(json.RawMessage)
	f.events = append(f.events, publishedEvent{channel: channelKey, event: event, payload: string(raw)})

	return nil
}

func newTestPushHandler(provider, env string, broadcaster LocalBroadcaster) *PushHandler {
	cfg := &config.Config{Realtime: &config.RealtimeConfig{Provider: provider}}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Broadcaster: broadcaster,
	})
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(data))
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/relay"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RelaysEnvelope(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	h := newTestPushHandler(constants.RealtimeProviderGoogle, constants.EnvLocal, broadcaster)

	rec := doPush(h, pushBody(t, `{"event":"notification","channel":"5","payload":{"id":9}}`, map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, "5", broadcaster.events[0].channel)
	assert.Equal(t, "notification", broadcaster.events[0].event)
	assert.JSONEq(t, `{"id":9}`, broadcaster.events[0].payload)
}

func TestPushHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		publishErr error
		want       int
	}{
		{
			name: "unparseable request",
			body: func(*testing.T) string { return "{" },
			want: http.StatusBadRequest,
		},
		{
			name: "data is not base64",
			body: func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			want: http.StatusBadRequest,
		},
		{
			name: "envelope without channel is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, `{"event":"notification"}`, nil) },
			want: http.StatusOK,
		},
		{
			name:       "delivery failure asks for a retry",
			body:       func(t *testing.T) string { return pushBody(t, `{"event":"notification","channel":"5"}`, nil) },
			publishErr: errors.New("write: broken pipe"),
			want:       http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPushHandler(constants.RealtimeProviderGoogle, constants.EnvLocal, &fakeBroadcaster{err: tt.publishErr})

			rec := doPush(h, tt.body(t))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenOutsideLocal(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	h := newTestPushHandler(constants.RealtimeProviderGoogle, "production", broadcaster)
	require.True(t, h.verifyPushAuth)

	h.verify = func(*http.Request) error { return errors.New("token expired") }

	rec := doPush(h, pushBody(t, `{"event":"notification","channel":"5"}`, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, broadcaster.events)
}

func TestPushHandler_SkipsVerificationForOtherProviders(t *testing.T) {
	h := newTestPushHandler(constants.RealtimeProviderNATS, "production", &fakeBroadcaster{})

	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMalformedHeader(t *testing.T) {
	tests := map[string]string{
		"missing": "",
		"scheme":  "Basic abc",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/push", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			assert.Error(t, verifyPubSubToken(req))
		})
	}
}
