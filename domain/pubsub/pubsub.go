package pubsub

import (
	"context"
	"encoding/json"
)

type Message struct {
	Channel string
	Payload string
}

type PubSub interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	Close() error
}

type Service interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) PubSub
}

// Envelope carries one dispatched event between processes.
type Envelope struct {
	Origin  string          `json:"origin"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}
