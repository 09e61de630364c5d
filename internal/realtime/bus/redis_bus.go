package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime"
)

const (
	DefaultChannel = "orbital-nexus:ws"
	publishTimeout = 2 * time.Second
)

var errNotInitialized = errors.New("redis ws bus not initialized")

type redisBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewRedisBus wraps an already connected client. Close does not close rdb.
func NewRedisBus(log *logger.Logger, rdb *goredis.Client, channel string) (Bus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	ch := strings.TrimSpace(channel)
	if ch == "" {
		ch = DefaultChannel
	}
	return &redisBus{
		log:     log.With("service", "RedisWSBus"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

// Connect dials addr and verifies it with a ping.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// wireFrame keeps the payload undecoded so forwarded frames re-encode byte for byte.
type wireFrame struct {
	Event   realtime.Event  `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func (b *redisBus) Publish(ctx context.Context, msg realtime.Message) error {
	if b == nil || b.rdb == nil {
		return errNotInitialized
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", msg.Event, err)
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// StartForwarder subscribes before returning so no frame published afterwards is missed.
// Delivery stops when ctx is cancelled.
func (b *redisBus) StartForwarder(ctx context.Context, onMsg func(m realtime.Message)) error {
	if b == nil || b.rdb == nil {
		return errNotInitialized
	}
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe %s: %w", b.channel, err)
	}

	frames := sub.Channel()
	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()
	go func() {
		for m := range frames {
			msg, err := decodeFrame(m.Payload)
			if err != nil {
				b.log.Warn("dropping malformed bus frame", "channel", m.Channel, "error", err)
				continue
			}
			onMsg(msg)
		}
	}()
	return nil
}

func decodeFrame(raw string) (realtime.Message, error) {
	var f wireFrame
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return realtime.Message{}, err
	}
	if f.Event == "" {
		return realtime.Message{}, fmt.Errorf("frame without event")
	}
	return realtime.Message{Event: f.Event, Payload: f.Payload}, nil
}

func (b *redisBus) Close() error { return nil }

type publishSink struct {
	bus Bus
	log *logger.Logger
}

// NewPublishSink routes broadcaster frames through the bus; every instance's
// forwarder then delivers them to its local hub.
func NewPublishSink(b Bus, log *logger.Logger) realtime.Sink {
	return &publishSink{bus: b, log: log.With("component", "BusSink")}
}

func (s *publishSink) Broadcast(msg realtime.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.bus.Publish(ctx, msg); err != nil {
		s.log.Warn("bus publish failed; frame dropped", "event", msg.Event, "error", err)
	}
}
