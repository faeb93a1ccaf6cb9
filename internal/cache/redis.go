package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:cache:"

// RedisStore keeps entries as JSON values and one set per tag holding the
// keys that carry it, so invalidation is a set scan plus deletes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func entryKey(key string) string { return redisKeyPrefix + "entry:" + key }
func tagKey(tag string) string   { return redisKeyPrefix + "tag:" + tag }

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := s.client.Get(ctx, entryKey(key)).Bytes()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache get: %w", err)
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, false, fmt.Errorf("cache decode: %w", err)
	}
	return e, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, entryKey(key), raw, ttl)
	for _, tag := range e.Tags {
		pipe.SAdd(ctx, tagKey(tag), key)
		// Tag sets outlive their entries slightly; stale members are
		// harmless on invalidation.
		pipe.Expire(ctx, tagKey(tag), ttl+time.Minute)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (s *RedisStore) Invalidate(ctx context.Context, tags ...string) (int, error) {
	dropped := 0
	for _, tag := range tags {
		keys, err := s.client.SMembers(ctx, tagKey(tag)).Result()
		if err != nil && err != redis.Nil {
			return dropped, fmt.Errorf("cache invalidate: %w", err)
		}

		for _, key := range keys {
			n, err := s.client.Del(ctx, entryKey(key)).Result()
			if err != nil {
				return dropped, fmt.Errorf("cache invalidate: %w", err)
			}
			dropped += int(n)
		}
		if err := s.client.Del(ctx, tagKey(tag)).Err(); err != nil {
			return dropped, fmt.Errorf("cache invalidate: %w", err)
		}
	}
	return dropped, nil
}
