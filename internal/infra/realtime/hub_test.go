package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	written  []any
	writeErr error
	closed   bool
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, v)

	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.written)
}

func newTestHub() *Hub {
	return NewHub(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PublishReachesOnlyTargetChannel(t *testing.T) {
	hub := newTestHub()
	ctx := context.Background()

	first := &fakeConn{}
	second := &fakeConn{}
	other := &fakeConn{}
	hub.register("7", first)
	hub.register("7", second)
	hub.register("8", other)

	require.NoError(t, hub.Publish(ctx, "7", "notification", map[string]string{"title": "hola"}))

	assert.Equal(t, 1, first.count())
	assert.Equal(t, 1, second.count())
	assert.Equal(t, 0, other.count())

	envelope, ok := first.written[0].(Envelope)
	require.True(t, ok)
	assert.Equal(t, "notification", envelope.Event)
	assert.Equal(t, "7", envelope.Channel)
}

func TestHub_PublishWithoutListeners(t *testing.T) {
	hub := newTestHub()

	assert.NoError(t, hub.Publish(context.Background(), "missing", "notification", nil))
}

func TestHub_DropsFailingConnection(t *testing.T) {
	hub := newTestHub()
	ctx := context.Background()

	healthy := &fakeConn{}
	broken := &fakeConn{writeErr: errors.New("broken pipe")}
	hub.register("7", healthy)
	hub.register("7", broken)

	require.NoError(t, hub.Publish(ctx, "7", "notification", nil))
	assert.Equal(t, 1, hub.Connections("7"))
	assert.True(t, broken.closed)

	healthy.writeErr = errors.New("gone")
	assert.Error(t, hub.Publish(ctx, "7", "notification", nil))
	assert.Equal(t, 0, hub.Connections("7"))
}

func TestHub_ConcurrentPublish(t *testing.T) {
	hub := newTestHub()
	ctx := context.Background()

	c := &fakeConn{}
	hub.register("1", c)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = hub.Publish(ctx, "1", "notification", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, c.count())
}

func TestHub_ServeWSDeliversEnvelope(t *testing.T) {
	hub := newTestHub()
	t.Cleanup(func() { _ = hub.Close() })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, strings.TrimPrefix(r.URL.Path, "/"))
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/42"
	ws, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = ws.Close() })

	require.Eventually(t, func() bool { return hub.Connections("42") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), "42", "notification", map[string]any{"id": 3}))

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Event   string         `json:"event"`
		Channel string         `json:"channel"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "notification", got.Event)
	assert.Equal(t, "42", got.Channel)
	assert.Equal(t, float64(3), got.Payload["id"])

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return hub.Connections("42") == 0 }, time.Second, 10*time.Millisecond)
}

func TestOriginChecker(t *testing.T) {
	cfg := &config.Config{
		Frontend: config.FrontendConfig{URL: "https://shop.example.com/app"},
		Realtime: &config.RealtimeConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	check := originChecker(cfg)

	tests := []struct {
		name   string
		origin string
		host   string
		want   bool
	}{
		{name: "no origin header", origin: "", host: "api.example.com", want: true},
		{name: "frontend origin", origin: "https://shop.example.com", host: "api.example.com", want: true},
		{name: "frontend origin ignores case", origin: "HTTPS://Shop.Example.com", host: "api.example.com", want: true},
		{name: "configured extra origin", origin: "http://localhost:5173", host: "api.example.com", want: true},
		{name: "same host", origin: "https://api.example.com", host: "api.example.com", want: true},
		{name: "foreign origin", origin: "https://evil.example.net", host: "api.example.com", want: false},
		{name: "frontend host on another scheme", origin: "http://shop.example.com", host: "api.example.com", want: false},
		{name: "malformed origin", origin: "null", host: "api.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/ws/notifications/1", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, check(r))
		})
	}
}

func TestOriginChecker_Wildcard(t *testing.T) {
	check := originChecker(&config.Config{Realtime: &config.RealtimeConfig{AllowedOrigins: []string{"*"}}})

	r := httptest.NewRequest(http.MethodGet, "http://api.example.com/ws/notifications/1", nil)
	r.Header.Set("Origin", "https://anywhere.example.org")

	assert.True(t, check(r))
}

func TestHub_ServeWSRejectsForeignOrigin(t *testing.T) {
	hub := NewHub(&config.Config{Frontend: config.FrontendConfig{URL: "https://shop.example.com"}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = hub.Close() })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, strings.TrimPrefix(r.URL.Path, "/"))
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/42"

	header := http.Header{"Origin": []string{"https://evil.example.net"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, hub.Connections("42"))

	header = http.Header{"Origin": []string{"https://shop.example.com"}}
	ws, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = ws.Close() })

	require.Eventually(t, func() bool { return hub.Connections("42") == 1 }, time.Second, 10*time.Millisecond)
}
