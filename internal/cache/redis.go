// Package cache keeps recently read subjects in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/models"
)

const (
	keyPrefix = "subject:"

	// tombstone replaces a deleted subject so in-flight reads cannot
	// repopulate it.
	tombstone    = "deleted"
	tombstoneTTL = 30 * time.Second
)

// kv is the part of the Redis client the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// SubjectCache stores JSON-encoded subjects under "subject:<id>" with a
// fixed TTL. Deleted subjects are kept as a short-lived tombstone.
type SubjectCache struct {
	client kv
	ttl    time.Duration
	closer func() error
}

// NewRedisSubjectCache connects to the Redis server from cfg and pings it.
func NewRedisSubjectCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*SubjectCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSubjectCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisSubjectCache").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	c := newSubjectCache(client, cfg.TTL)
	c.closer = client.Close
	return c, nil
}

func newSubjectCache(client kv, ttl time.Duration) *SubjectCache {
	return &SubjectCache{
		client: client,
		ttl:    ttl,
		closer: func() error { return nil },
	}
}

// Get reports ok == false on a miss and store.ErrSubjectNotFound for a
// tombstone.
func (c *SubjectCache) Get(ctx context.Context, id string) (models.Subject, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Subject{}, false, nil
	}
	if err != nil {
		return models.Subject{}, false, fmt.Errorf("error reading cached subject: %w", err)
	}
	if string(raw) == tombstone {
		return models.Subject{}, false, store.ErrSubjectNotFound
	}

	var subject models.Subject
	if err = json.Unmarshal(raw, &subject); err != nil {
		return models.Subject{}, false, fmt.Errorf("error decoding cached subject: %w", err)
	}

	return subject.Normalize(), true, nil
}

func (c *SubjectCache) Set(ctx context.Context, subject models.Subject) error {
	raw, err := json.Marshal(subject.Normalize())
	if err != nil {
		return fmt.Errorf("error encoding subject: %w", err)
	}

	if err = c.client.Set(ctx, keyPrefix+subject.ID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching subject: %w", err)
	}
	return nil
}

// Fill caches subject with SET NX, leaving any existing entry or tombstone
// in place.
func (c *SubjectCache) Fill(ctx context.Context, subject models.Subject) error {
	raw, err := json.Marshal(subject.Normalize())
	if err != nil {
		return fmt.Errorf("error encoding subject: %w", err)
	}

	if err = c.client.SetNX(ctx, keyPrefix+subject.ID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching subject: %w", err)
	}
	return nil
}

// Delete overwrites the entry with a tombstone.
func (c *SubjectCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Set(ctx, keyPrefix+id, []byte(tombstone), tombstoneTTL).Err(); err != nil {
		return fmt.Errorf("error evicting cached subject: %w", err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (c *SubjectCache) Close() error {
	return c.closer()
}
