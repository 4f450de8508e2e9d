package event

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/domain/pubsub"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Relay mirrors dispatches between processes over a pub/sub channel.
//
// Dispatch runs the local chain first and publishes forwarded events only
// when it succeeded. Listen hands received envelopes to the wrapped
// dispatcher directly, so relayed events are never published again.
type Relay struct {
	domain.EventDispatcher

	service pubsub.Service
	channel string
	origin  string
	logger  *zap.SugaredLogger

	mu      sync.RWMutex
	forward map[string]struct{}
}

func NewRelay(inner domain.EventDispatcher, service pubsub.Service, channel string, logger *zap.SugaredLogger) *Relay {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Relay{
		EventDispatcher: inner,
		service:         service,
		channel:         channel,
		origin:          gonanoid.Must(12),
		logger:          logger,
		forward:         make(map[string]struct{}),
	}
}

func (r *Relay) Origin() string {
	return r.origin
}

// Forward marks events whose dispatches are published to the channel.
func (r *Relay) Forward(eventNames ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range eventNames {
		r.forward[name] = struct{}{}
	}
}

func (r *Relay) forwards(eventName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.forward[eventName]
	return ok
}

func (r *Relay) Dispatch(eventName string, payload any) error {
	if err := r.EventDispatcher.Dispatch(eventName, payload); err != nil {
		return err
	}

	if !r.forwards(eventName) {
		return nil
	}

	return r.publish(eventName, payload)
}

func (r *Relay) publish(eventName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "encode payload of %q", eventName)
	}

	msg, err := json.Marshal(pubsub.Envelope{Origin: r.origin, Event: eventName, Payload: data})
	if err != nil {
		return errors.Wrap(err, "encode envelope")
	}

	if err := r.service.Publish(context.Background(), r.channel, string(msg)); err != nil {
		return errors.Wrapf(err, "publish %q", eventName)
	}

	r.logger.Debugw("event relayed", "event", eventName, "channel", r.channel)

	return nil
}

// Listen dispatches envelopes published by other relays until ctx is done.
func (r *Relay) Listen(ctx context.Context) error {
	sub := r.service.Subscribe(ctx, r.channel)
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "receive message")
		}

		var envelope pubsub.Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			r.logger.Warnw("malformed relay message", "channel", msg.Channel, "error", err)
			continue
		}
		if envelope.Origin == r.origin {
			continue
		}

		var payload any
		if len(envelope.Payload) > 0 {
			if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
				r.logger.Warnw("malformed relay payload", "event", envelope.Event, "error", err)
				continue
			}
		}

		if err := r.EventDispatcher.Dispatch(envelope.Event, payload); err != nil {
			r.logger.Errorw("relayed dispatch failed", "event", envelope.Event, "origin", envelope.Origin, "error", err)
		}
	}
}

func (r *Relay) Listeners(eventName string) []domain.Listener {
	if inspector, ok := r.EventDispatcher.(domain.ListenerInspector); ok {
		return inspector.Listeners(eventName)
	}

	return nil
}
