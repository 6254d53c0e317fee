package realtime

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope_RoundTrip(t *testing.T) {
	data, err := newEnvelope("7", "notification", map[string]any{"id": 3}).marshal()
	require.NoError(t, err)

	env, err := DecodeEnvelope(data)

	require.NoError(t, err)
	assert.Equal(t, "7", env.Channel)
	assert.Equal(t, "notification", env.Event)
	assert.JSONEq(t, `{"id":3}`, string(env.Payload))
}

func TestDecodeEnvelope_Rejects(t *testing.T) {
	for _, raw := range []string{`not json`, `{"event":"notification"}`, `{"channel":"7"}`} {
		_, err := DecodeEnvelope([]byte(raw))
		assert.Error(t, err, raw)
	}
}

type recordingBroadcaster struct {
	channel string
	event   string
	payload any
}

func (b *recordingBroadcaster) Publish(_ context.Context, channelKey, event string, payload any) error {
	b.channel, b.event, b.payload = channelKey, event, payload

	return nil
}

func TestNATSRelay_HandleForwardsDecodedEnvelope(t *testing.T) {
	local := &recordingBroadcaster{}
	relay := NewNATSRelay(nil, "", local, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := newEnvelope("12", "notification", map[string]string{"title": "Nuevo mensaje"}).marshal()
	require.NoError(t, err)

	relay.handle(context.Background(), data)

	assert.Equal(t, "12", local.channel)
	assert.Equal(t, "notification", local.event)
	assert.Equal(t, "notifications", relay.prefix)
}

func TestNATSRelay_HandleDropsGarbage(t *testing.T) {
	local := &recordingBroadcaster{}
	relay := NewNATSRelay(nil, "chat", local, slog.New(slog.NewTextHandler(io.Discard, nil)))

	relay.handle(context.Background(), []byte("{"))

	assert.Empty(t, local.channel)
}
