package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// The key expires one window after its first hit, which gives the same
// reset-on-expiry behaviour as Memory.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

const redisTimeout = 2 * time.Second

// Redis is a limiter shared by all instances through Redis.
// It fails closed: any Redis error denies the request.
type Redis struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

// NewRedis creates a Redis-backed limiter.
func NewRedis(addr, password, prefix string, log *slog.Logger) (*Redis, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("rate limiter redis addr is required")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "unievent:ratelimit"
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: prefix,
		log:    log.With("component", "ratelimit"),
	}, nil
}

// Allow implements Limiter.
func (r *Redis) Allow(ctx context.Context, key string, limit Limit) bool {
	windowMs := limit.Window.Milliseconds()
	if windowMs <= 0 || limit.MaxRequests <= 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, r.client, []string{r.prefix + ":" + key}, windowMs).Int64()
	if err != nil {
		r.log.WarnContext(ctx, "rate limiter unavailable, denying", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return count <= int64(limit.MaxRequests)
}

// Ping checks the Redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
