package chat

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/domain"
)

const (
	EventMessage = "chat:message"
	EventError   = "error"
)

// Event is the frame exchanged with websocket clients in both directions.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type incomingMessage struct {
	Text string `json:"text"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	payload, err := json.Marshal(Event{Event: event, Data: raw})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return payload, nil
}

// EncodeMessage renders msg as a chat:message frame.
func EncodeMessage(msg domain.Message) ([]byte, error) {
	return encode(EventMessage, presenter.FromMessage(msg))
}
