// Package cache stores assessment results in Redis keyed by a digest of the
// normalized input, so identical requests skip recomputation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Skufu/nutririsk/internal/assessment"
)

const keyPrefix = "nutririsk:assessment:"

// Cache is safe for concurrent use. A nil *Cache never hits and drops writes.
type Cache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(rdb, ttl), nil
}

func New(rdb *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Key derives the cache key for a normalized input.
func Key(in assessment.Input) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	sum := sha256.Sum256(b)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for in. A miss is (nil, false, nil).
func (c *Cache) Get(ctx context.Context, in assessment.Input) (*assessment.Result, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	key, err := Key(in)
	if err != nil {
		return nil, false, err
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var res assessment.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("decode cached result: %w", err)
	}
	return &res, true, nil
}

// Put stores res for in with the configured TTL.
func (c *Cache) Put(ctx context.Context, in assessment.Input, res *assessment.Result) error {
	if c == nil || res == nil {
		return nil
	}
	key, err := Key(in)
	if err != nil {
		return err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
