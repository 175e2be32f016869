package usage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisUsagePrefix = "usage"
	redisProSet      = "pro_emails"

	// counters are per calendar day; keep them around a little longer for
	// the export tooling before letting redis reclaim them
	redisCounterTTL = 72 * time.Hour
)

// RedisStore is the shared-counter backend for deployments where several
// API instances serve the same user base.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, password, prefix string) (*RedisStore, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if prefix = strings.TrimSpace(prefix); prefix == "" {
		prefix = "listinghub"
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		prefix: prefix,
	}, nil
}

func (s *RedisStore) counterKey(day, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", s.prefix, redisUsagePrefix, day, email)
}

func (s *RedisStore) proKey() string {
	return s.prefix + ":" + redisProSet
}

func (s *RedisStore) Count(ctx context.Context, day, email string) (int, error) {
	n, err := s.client.Get(ctx, s.counterKey(day, email)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get count: %w", err)
	}
	return n, nil
}

func (s *RedisStore) Increment(ctx context.Context, day, email string) error {
	key := s.counterKey(day, email)
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, redisCounterTTL).Err(); err != nil {
			return fmt.Errorf("redis expire: %w", err)
		}
	}
	return nil
}

func (s *RedisStore) IsPro(ctx context.Context, email string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.proKey(), email).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) ProEmails(ctx context.Context) ([]string, error) {
	emails, err := s.client.SMembers(ctx, s.proKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	return emails, nil
}

func (s *RedisStore) AddPro(ctx context.Context, email string) error {
	if err := s.client.SAdd(ctx, s.proKey(), email).Err(); err != nil {
		return fmt.Errorf("redis sadd: %w", err)
	}
	return nil
}

func (s *RedisStore) RemovePro(ctx context.Context, email string) error {
	if err := s.client.SRem(ctx, s.proKey(), email).Err(); err != nil {
		return fmt.Errorf("redis srem: %w", err)
	}
	return nil
}

func (s *RedisStore) UsageForDay(ctx context.Context, day string) (map[string]int, error) {
	pattern := s.counterKey(day, "*")
	keyPrefix := s.counterKey(day, "")

	out := make(map[string]int)
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		n, err := s.client.Get(ctx, key).Int()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get %s: %w", key, err)
		}
		out[strings.TrimPrefix(key, keyPrefix)] = n
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return out, nil
}

// Ping verifies connectivity at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
