package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime/bus"
)

// Clients holds shared connections to optional infrastructure.
type Clients struct {
	Redis *goredis.Client
}

// wireClients never fails: an unreachable redis only disables cross-instance fan-out.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) Clients {
	var out Clients
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set; websocket frames stay local")
		return out
	}
	rdb, err := bus.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		log.Warn("redis unavailable; websocket frames stay local", "error", err, "addr", cfg.RedisAddr)
		return out
	}
	log.Info("Connected to redis", "addr", cfg.RedisAddr)
	out.Redis = rdb
	return out
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
