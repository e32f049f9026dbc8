// Package cache provides an optional pose-score cache keyed by a
// chromosome's genotype, so identical trial poses reached by different
// search paths (GA crossover, SimAnn restarts) skip a repeated scoring-
// function evaluation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Entry is the cached result of scoring one chromosome vector.
type Entry struct {
	Score     float64   `json:"score"`
	ScoredAt  time.Time `json:"scored_at"`
}

// PoseCache stores and retrieves scores keyed by a chromosome vector.
type PoseCache interface {
	Get(ctx context.Context, vector []float64) (Entry, error)
	Set(ctx context.Context, vector []float64, entry Entry) error
	Close() error
}

// VectorKey derives a stable cache key from a chromosome's genotype
// vector. Rounding to a fixed number of decimal places collapses
// floating-point noise between otherwise-identical trial poses.
func VectorKey(vector []float64) string {
	h := sha256.New()
	for _, v := range vector {
		fmt.Fprintf(h, "%.6f|", math.Round(v*1e6)/1e6)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// redisCache is a go-redis-backed PoseCache.
type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Options configures a Redis-backed PoseCache.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// NewRedisCache dials addr and returns a PoseCache backed by it. Ping is
// called once so a misconfigured address fails fast at startup rather
// than on the first scored pose.
func NewRedisCache(ctx context.Context, opts Options) (PoseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "dockvedic:pose:"
	}
	return &redisCache{client: client, prefix: prefix, ttl: opts.TTL}, nil
}

func (c *redisCache) buildKey(vector []float64) string {
	return c.prefix + VectorKey(vector)
}

func (c *redisCache) Get(ctx context.Context, vector []float64) (Entry, error) {
	data, err := c.client.Get(ctx, c.buildKey(vector)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Entry{}, ErrMiss
		}
		return Entry{}, fmt.Errorf("cache: redis get failed: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("cache: unmarshal failed: %w", err)
	}
	return entry, nil
}

func (c *redisCache) Set(ctx context.Context, vector []float64, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache: marshal failed: %w", err)
	}
	if err := c.client.Set(ctx, c.buildKey(vector), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set failed: %w", err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// memoryCache is an in-process PoseCache for tests and for CLI runs with
// caching enabled but no Redis instance configured.
type memoryCache struct {
	ttl   time.Duration
	store map[string]memoryRecord
}

type memoryRecord struct {
	entry     Entry
	expiresAt time.Time
}

// NewMemoryCache returns an in-process PoseCache. A zero ttl means
// entries never expire.
func NewMemoryCache(ttl time.Duration) PoseCache {
	return &memoryCache{ttl: ttl, store: make(map[string]memoryRecord)}
}

func (c *memoryCache) Get(_ context.Context, vector []float64) (Entry, error) {
	rec, ok := c.store[VectorKey(vector)]
	if !ok {
		return Entry{}, ErrMiss
	}
	if c.ttl > 0 && time.Now().After(rec.expiresAt) {
		delete(c.store, VectorKey(vector))
		return Entry{}, ErrMiss
	}
	return rec.entry, nil
}

func (c *memoryCache) Set(_ context.Context, vector []float64, entry Entry) error {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}
	c.store[VectorKey(vector)] = memoryRecord{entry: entry, expiresAt: expiresAt}
	return nil
}

func (c *memoryCache) Close() error { return nil }

var (
	_ PoseCache = (*redisCache)(nil)
	_ PoseCache = (*memoryCache)(nil)
)
