package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cleaner removes index members older than the record TTL. Their data keys
// have already expired by then.
type Cleaner struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewCleaner(client *redis.Client, keyPrefix string, ttl time.Duration) *Cleaner {
	if keyPrefix == "" {
		keyPrefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cleaner{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (c *Cleaner) Cleanup(ctx context.Context) (int64, error) {
	cutoff := fmt.Sprintf("(%f", float64(time.Now().Add(-c.ttl).UnixNano())/1e9)

	keys := []string{fmt.Sprintf("%s:idx:all", c.keyPrefix)}

	pattern := fmt.Sprintf("%s:idx:state:*", c.keyPrefix)
	var cursor uint64
	for {
		batch, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return 0, fmt.Errorf("scan: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	pipe := c.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.ZRemRangeByScore(ctx, key, "-inf", cutoff)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	var removed int64
	for _, cmd := range cmds {
		removed += cmd.Val()
	}
	return removed, nil
}

// Run cleans every interval until ctx is done.
func (c *Cleaner) Run(ctx context.Context, interval time.Duration, logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := c.Cleanup(ctx)
			if err != nil {
				logger.Warn("index cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("index cleaned", "removed", removed)
			}
		}
	}
}
