package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebsocketServer upgrades a request and streams a channel's events until the client leaves.
type WebsocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, channelKey string) error
}

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub    WebsocketServer
	Logger *slog.Logger
}

// RealtimeHandler attaches websocket clients to their notification channel
type RealtimeHandler struct {
	hub    WebsocketServer
	logger *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// Notifications handles GET /ws/notifications/:userId. The channel key is the decimal user id,
// the same key notifications are published under.
func (h *RealtimeHandler) Notifications(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channelKey := strconv.FormatUint(uint64(userID), 10)
	if err := h.hub.ServeWS(c.Response(), c.Request(), channelKey); err != nil {
		// The upgrader has already answered the client.
		h.logger.Debug("Websocket session rejected", slog.String("channel", channelKey), slog.Any("error", err))
	}

	return nil
}
