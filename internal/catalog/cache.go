package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const pageCacheKeyPrefix = "teini:catalog:page:"

// PageCache keeps assembled catalog pages in redis for a short TTL so the
// placeholder pipeline is not re-run on every request. A nil *PageCache is a
// valid no-op cache.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewPageCache creates a page cache. ttl <= 0 selects one minute.
func NewPageCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *PageCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &PageCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached page, if any. Cache errors are logged and reported
// as a miss; the cache never fails a request.
func (c *PageCache) Get(ctx context.Context, index int) (*PageView, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, pageCacheKey(index)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "page cache read failed",
				slog.Int("page", index),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var view PageView
	if err := json.Unmarshal(raw, &view); err != nil {
		c.logger.WarnContext(ctx, "page cache entry corrupt",
			slog.Int("page", index),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return &view, true
}

// Set stores a page. Failures are logged and otherwise ignored.
func (c *PageCache) Set(ctx context.Context, index int, view *PageView) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		c.logger.WarnContext(ctx, "page cache encode failed",
			slog.Int("page", index),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.client.Set(ctx, pageCacheKey(index), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "page cache write failed",
			slog.Int("page", index),
			slog.String("error", err.Error()),
		)
	}
}

func pageCacheKey(index int) string {
	return fmt.Sprintf("%s%d", pageCacheKeyPrefix, index)
}
