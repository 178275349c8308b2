package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// ResultCache keeps recently generated enhancement results keyed by a hash
// of (task, content, level), so identical back-to-back requests can skip
// the completion provider.
type ResultCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewResultCache(client *redisv9.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ResultCache{client: client, ttl: ttl}
}

func (c *ResultCache) Get(ctx context.Context, task, content, level string) (string, bool, error) {
	raw, err := c.client.Get(ctx, c.key(task, content, level)).Result()
	if err == redisv9.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get result failed: %w", err)
	}
	return raw, true, nil
}

func (c *ResultCache) Set(ctx context.Context, task, content, level, generated string) error {
	if err := c.client.Set(ctx, c.key(task, content, level), generated, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set result failed: %w", err)
	}
	return nil
}

func (c *ResultCache) key(task, content, level string) string {
	sum := sha256.Sum256([]byte(task + "\x00" + level + "\x00" + content))
	return fmt.Sprintf("enhance:result:%s:%x", task, sum)
}
