package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"contract-mgmt/backend/internal/logger"
)

const keyPrefix = "contract-mgmt:ratelimit:"

// Redis is a fixed one-minute window counter shared by every server instance.
// When Redis is unreachable it falls back to a per-process Local limiter.
type Redis struct {
	client    redis.Cmdable
	perMinute int64
	window    time.Duration
	fallback  *Local
	log       *slog.Logger
	now       func() time.Time
}

// NewRedis returns a Redis limiter allowing perMinute requests per key per minute.
func NewRedis(client redis.Cmdable, perMinute int, log *slog.Logger) *Redis {
	return &Redis{
		client:    client,
		perMinute: int64(perMinute),
		window:    time.Minute,
		fallback:  NewLocal(perMinute),
		log:       logger.Component(log, "ratelimit"),
		now:       time.Now,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	bucket := r.now().Unix() / int64(r.window/time.Second)
	k := keyPrefix + key + ":" + strconv.FormatInt(bucket, 10)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.Expire(ctx, k, r.window+time.Second)
		return nil
	})
	if err != nil {
		r.log.WarnContext(ctx, "redis rate limit unavailable, using local limiter", "error", err)
		return r.fallback.Allow(ctx, key)
	}
	return incr.Val() <= r.perMinute, nil
}

// NewClient opens a go-redis client and checks connectivity.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ratelimit: ping redis: %w", err)
	}
	return c, nil
}
