package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"marketplace/config"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	defaultWriteTimeout = 5 * time.Second
	pongWait            = 60 * time.Second
	pingPeriod          = (pongWait * 9) / 10
)

// conn is the subset of *websocket.Conn the hub writes to.
type conn interface {
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client serializes writes to a single connection.
type client struct {
	conn conn
	mu   sync.Mutex
}

func (c *client) write(v any, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.conn.WriteJSON(v))
}

// Hub keeps websocket connections grouped by channel key (the recipient id)
// and implements service.RealtimePublisher.
type Hub struct {
	mu           sync.RWMutex
	clients      map[string]map[*client]struct{}
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	writeTimeout := defaultWriteTimeout
	if cfg != nil && cfg.Realtime != nil && cfg.Realtime.WriteTimeout > 0 {
		writeTimeout = cfg.Realtime.WriteTimeout
	}

	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg),
		},
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// originChecker accepts requests without an Origin header, same-host requests,
// the frontend origin and any configured extra origin.
func originChecker(cfg *config.Config) func(r *http.Request) bool {
	allowed := make(map[string]struct{})
	allowAny := false

	add := func(raw string) {
		if strings.TrimSpace(raw) == "*" {
			allowAny = true

			return
		}
		if origin, ok := normalizeOrigin(raw); ok {
			allowed[origin] = struct{}{}
		}
	}

	if cfg != nil {
		add(cfg.Frontend.URL)
		if cfg.Realtime != nil {
			for _, origin := range cfg.Realtime.AllowedOrigins {
				add(origin)
			}
		}
	}

	return func(r *http.Request) bool {
		header := r.Header.Get("Origin")
		if header == "" || allowAny {
			return true
		}

		origin, ok := normalizeOrigin(header)
		if !ok {
			return false
		}
		if _, found := allowed[origin]; found {
			return true
		}

		u, _ := url.Parse(header)

		return strings.EqualFold(u.Host, r.Host)
	}
}

func normalizeOrigin(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	return strings.ToLower(u.Scheme + "://" + u.Host), true
}

func (h *Hub) register(channelKey string, c conn) *client {
	cl := &client{conn: c}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[channelKey] == nil {
		h.clients[channelKey] = make(map[*client]struct{})
	}
	h.clients[channelKey][cl] = struct{}{}

	return cl
}

func (h *Hub) unregister(channelKey string, cl *client) {
	h.mu.Lock()
	set, ok := h.clients[channelKey]
	if ok {
		if _, found := set[cl]; found {
			delete(set, cl)
			if len(set) == 0 {
				delete(h.clients, channelKey)
			}
		} else {
			ok = false
		}
	}
	h.mu.Unlock()

	if ok {
		_ = cl.conn.Close()
	}
}

// Connections returns the number of open connections for channelKey.
func (h *Hub) Connections(channelKey string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[channelKey])
}

// Publish writes the event to every connection of channelKey. Connections that fail are dropped.
func (h *Hub) Publish(ctx context.Context, channelKey, event string, payload any) error {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[channelKey]))
	for cl := range h.clients[channelKey] {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		h.logger.DebugContext(ctx, "[WebsocketHub] No listeners for channel", slog.String("channel", channelKey))

		return nil
	}

	envelope := newEnvelope(channelKey, event, payload)

	var errs []error
	for _, cl := range targets {
		if err := cl.write(envelope, h.writeTimeout); err != nil {
			h.logger.WarnContext(ctx, "[WebsocketHub] Dropping connection after failed write",
				slog.String("channel", channelKey),
				slog.Any("error", err),
			)
			h.unregister(channelKey, cl)
			errs = append(errs, err)
		}
	}

	if len(errs) == len(targets) {
		return errors.Wrapf(errs[0], "failed to deliver %s to channel %s", event, channelKey)
	}

	return nil
}

// ServeWS upgrades the request and keeps the connection registered under channelKey until the
// client goes away. It blocks for the lifetime of the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, channelKey string) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	cl := h.register(channelKey, ws)
	defer h.unregister(channelKey, cl)

	h.logger.Debug("[WebsocketHub] Client connected", slog.String("channel", channelKey))

	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)

	go h.keepAlive(cl, done)

	// Clients do not send anything; reading only drains control frames and detects disconnects.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("[WebsocketHub] Unexpected close", slog.String("channel", channelKey), slog.Any("error", err))
			}

			return nil
		}
	}
}

func (h *Hub) keepAlive(cl *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ws, ok := cl.conn.(*websocket.Conn)
	if !ok {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			cl.mu.Lock()
			err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout))
			cl.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, set := range clients {
		for cl := range set {
			_ = cl.conn.Close()
		}
	}

	return nil
}
