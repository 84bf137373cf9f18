package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=bus.go -destination=../mock/cache_bus_mock.go -package=mock

// Message announces that prefix was invalidated in the scope of ProfileID.
type Message struct {
	Origin    string       `json:"origin"`
	ProfileID string       `json:"profile_id"`
	Prefix    querykey.Key `json:"prefix"`
}

// Bus carries invalidations between server instances.
type Bus interface {
	Publish(ctx context.Context, msg Message) error
	// Subscribe calls handler for every received message until ctx is done.
	Subscribe(ctx context.Context, handler func(Message)) error
}

// RedisBus is a [Bus] over Redis pub/sub.
type RedisBus struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

// NewRedisBus connects to addr and verifies the connection with PING.
func NewRedisBus(ctx context.Context, addr, password, channel string, log *logger.Logger) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}
	log.Info().Str("func", "NewRedisBus").Str("channel", channel).Msg("connected to redis invalidation bus")

	return &RedisBus{client: client, channel: channel, logger: log}, nil
}

func (b *RedisBus) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode invalidation: %w", err)
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, handler func(Message)) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				b.logger.Warn().Err(err).Str("func", "RedisBus.Subscribe").Msg("dropping malformed invalidation")
				continue
			}
			handler(msg)
		}
	}
}

// Close releases the Redis connection.
func (b *RedisBus) Close() error {
	return b.client.Close()
}
