package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	redis "github.com/redis/go-redis/v9"

	"waste-impact-service/models"
)

// ErrMiss is returned when no snapshot is cached for the requested key.
var ErrMiss = errors.New("cache miss")

// Cache stores generated public impact reports in Redis so the
// unauthenticated endpoint never hits the analytics pipeline on every
// request. Invalidation happens on report events; the TTL is a backstop.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(addr, password string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Close closes the Redis connection.
func (c *Cache) Close() error { return c.client.Close() }

// Key builds the cache key for a public snapshot of the given date range.
func Key(start, end time.Time) string {
	return fmt.Sprintf("impact:public:%s:%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Get returns the cached report for key, or ErrMiss.
func (c *Cache) Get(ctx context.Context, key string) (*models.ImpactReport, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	var report models.ImpactReport
	if err := json.Unmarshal(data, &report); err != nil {
		// A corrupt entry behaves like a miss so the caller regenerates.
		log.WithError(err).Warnf("Dropping corrupt cache entry %s", key)
		c.client.Del(ctx, key)
		return nil, ErrMiss
	}
	return &report, nil
}

// Set stores the report under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, report *models.ImpactReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached public snapshot. Called when a report
// event arrives, since any cached window may be stale.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "impact:public:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	log.Infof("Invalidated %d cached snapshots", len(keys))
	return nil
}
