package redisstore

import (
	"context"

	"github.com/Sententiaregum/flux-container/domain/pubsub"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Broker carries relay envelopes over redis pub/sub channels.
type Broker struct {
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

type subscription struct {
	rps *redis.PubSub
}

func NewBroker(rdb *redis.Client, logger *zap.SugaredLogger) *Broker {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Broker{rdb: rdb, logger: logger}
}

func (b *Broker) Publish(ctx context.Context, channel string, message interface{}) error {
	return b.rdb.Publish(ctx, channel, message).Err()
}

// Subscribe waits for redis to confirm the subscription so that messages
// published right after it returns are delivered.
func (b *Broker) Subscribe(ctx context.Context, channel string) pubsub.PubSub {
	rps := b.rdb.Subscribe(ctx, channel)
	if _, err := rps.Receive(ctx); err != nil {
		b.logger.Warnw("subscription not confirmed", "channel", channel, "error", err)
	}

	return &subscription{rps: rps}
}

func (s *subscription) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := s.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

func (s *subscription) Close() error {
	return s.rps.Close()
}
