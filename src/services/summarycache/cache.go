package summarycache

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
)

const latestSummaryKey = "summary:latest"

// Cache เก็บ summary ล่าสุดที่ admin push ไว้ใน Redis เพื่อให้ feedback
// submission แนบ snapshot ได้ภายหลัง
// A nil client is tolerated (dev mode without Redis): Store becomes a
// no-op and Latest reads back empty, matching a cache that was never
// written.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Store persists the latest summary. No expiration: the cache always
// holds the single most recent text.
func (c *Cache) Store(ctx context.Context, text string) error {
	if c.client == nil {
		log.Println("⚠️ redis client not initialized, summary cache skipped")
		return nil
	}
	return c.client.Set(ctx, latestSummaryKey, text, 0).Err()
}

// Latest returns the cached summary, or "" when none was stored.
func (c *Cache) Latest(ctx context.Context) string {
	if c.client == nil {
		return ""
	}
	val, err := c.client.Get(ctx, latestSummaryKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Println("⚠️ summary cache read failed:", err)
		}
		return ""
	}
	return val
}
