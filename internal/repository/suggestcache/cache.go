// Package suggestcache caches rendered suggestion lists in Redis. The cache
// is a best-effort accelerator: every failure path degrades to a miss so the
// suggest service falls back to direct catalog queries.
package suggestcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/domain/suggest"
)

const keyPrefix = "partitura:suggest:"

// Config holds connection parameters for the suggestion cache.
type Config struct {
	Addrs    []string
	Password string
	TTL      time.Duration
}

// Cache stores suggestion lists keyed by normalized query, kind, and limit.
type Cache struct {
	client     rueidis.Client
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New connects to Redis and creates a suggestion cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss").
func New(cfg Config, cacheTotal *prometheus.CounterVec, logger *zap.Logger) (*Cache, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return newWithClient(client, cfg.TTL, cacheTotal, logger), nil
}

// newWithClient wires a cache over an existing client (tests).
func newWithClient(
	client rueidis.Client, ttl time.Duration,
	cacheTotal *prometheus.CounterVec, logger *zap.Logger,
) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{client: client, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	cmd := c.client.B().Ping().Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (c *Cache) Close() {
	c.client.Close()
}

// Get returns a cached suggestion list, or ok=false on miss or any error.
func (c *Cache) Get(ctx context.Context, query, kind string, limit int) ([]suggest.Suggestion, bool) {
	cmd := c.client.B().Get().Key(c.key(query, kind, limit)).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			c.logger.Warn("Failed to read suggestion cache", zap.Error(err))
		}
		c.inc("miss")
		return nil, false
	}

	var items []suggest.Suggestion
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("Failed to decode cached suggestions", zap.Error(err))
		c.inc("miss")
		return nil, false
	}

	c.inc("hit")
	return items, true
}

// Set stores a suggestion list with the configured TTL. Failures are logged
// and dropped.
func (c *Cache) Set(ctx context.Context, query, kind string, limit int, items []suggest.Suggestion) {
	data, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("Failed to encode suggestions for cache", zap.Error(err))
		return
	}

	cmd := c.client.B().Set().Key(c.key(query, kind, limit)).Value(string(data)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("Failed to write suggestion cache", zap.Error(err))
	}
}

func (c *Cache) key(query, kind string, limit int) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%d", query, kind, limit))
	return keyPrefix + hex.EncodeToString(h[:])
}

func (c *Cache) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
