// Package realtime delivers notification events to connected clients.
package realtime

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Envelope is the wire format shared by every provider.
type Envelope struct {
	Event   string    `json:"event"`
	Channel string    `json:"channel"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sentAt"`
}

func newEnvelope(channelKey, event string, payload any) Envelope {
	return Envelope{
		Event:   event,
		Channel: channelKey,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	}
}

func (e Envelope) marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s event for channel %s", e.Event, e.Channel)
	}

	return data, nil
}

// InboundEnvelope is an Envelope read back from a relay; the payload stays encoded.
type InboundEnvelope struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sentAt"`
}

// DecodeEnvelope parses an event produced by one of the publishers.
func DecodeEnvelope(data []byte) (*InboundEnvelope, error) {
	var env InboundEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to decode realtime envelope")
	}
	if env.Channel == "" || env.Event == "" {
		return nil, errors.New("realtime envelope without channel or event")
	}

	return &env, nil
}
