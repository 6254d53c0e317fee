package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHub struct {
	channels []string
}

func (h *recordingHub) ServeWS(w http.ResponseWriter, _ *http.Request, channelKey string) error {
	h.channels = append(h.channels, channelKey)
	w.WriteHeader(http.StatusSwitchingProtocols)

	return nil
}

func TestRealtimeHandler_Notifications(t *testing.T) {
	hub := &recordingHub{}
	h := NewRealtimeHandler(RealtimeHandlerParams{Hub: hub, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/ws/notifications/:userId", h.Notifications)

	rec := serve(e, http.MethodGet, "/ws/notifications/42", "")
	assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)

	rec = serve(e, http.MethodGet, "/ws/notifications/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, []string{"42"}, hub.channels)
}
