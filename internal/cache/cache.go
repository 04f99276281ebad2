// Package cache wraps the redis client used for refresh-token revocation and
// rate-limit counters. Keys are namespaced as "<namespace>:<key>".
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"UMS_TALENTA_BACK-END/internal/config"
)

const revokedNamespace = "revoked"

type Cache struct {
	client redis.UniversalClient
}

// New connects to the configured redis instance. It does not ping; use Ping.
func New(cfg config.RedisConfig) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: rdb}
}

// NewWithClient wraps an existing client
func NewWithClient(client redis.UniversalClient) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, namespace+":"+key, value, ttl).Err()
}

// Get returns "" and no error when the key does not exist
func (c *Cache) Get(ctx context.Context, namespace, key string) (string, error) {
	v, err := c.client.Get(ctx, namespace+":"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (c *Cache) Delete(ctx context.Context, namespace, key string) error {
	return c.client.Del(ctx, namespace+":"+key).Err()
}

func (c *Cache) GetTTL(ctx context.Context, namespace, key string) (time.Duration, error) {
	return c.client.TTL(ctx, namespace+":"+key).Result()
}

// incrWindow bumps a counter and arms its expiry in one atomic step. A
// counter left without a TTL is re-armed as well.
var incrWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 or redis.call('PTTL', KEYS[1]) == -1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n`)

// IncrWithExpire increments a fixed-window counter, starting the window on first use
func (c *Cache) IncrWithExpire(ctx context.Context, namespace, key string, window time.Duration) (int64, error) {
	return incrWindow.Run(ctx, c.client, []string{namespace + ":" + key}, window.Milliseconds()).Int64()
}

// RevokeToken blocklists a token id until ttl elapses
func (c *Cache) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.Set(ctx, revokedNamespace, jti, "1", ttl)
}

func (c *Cache) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := c.client.Exists(ctx, revokedNamespace+":"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
