package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with a
// ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore is a ports.KeyValueStore over Redis, for deployments where
// cache and preferences are shared between dashboard instances. Keys are
// stored under a namespace prefix so Clear never touches foreign data.
// Like FileStore, every failure degrades to a miss or a no-op.
type RedisStore struct {
	client    *redis.Client
	namespace string
	timeout   time.Duration
	log       zerolog.Logger
	hook      ports.FailureHook
}

// NewRedisStore wraps client in a store namespaced by prefix.
func NewRedisStore(client *redis.Client, namespace string, log zerolog.Logger, hook ports.FailureHook) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
		timeout:   defaultTimeout,
		log:       log,
		hook:      hook,
	}
}

func (s *RedisStore) Get(key string, out any) bool {
	ctx, cancel := s.opCtx()
	defer cancel()

	raw, err := s.client.Get(ctx, s.namespace+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.fail("get", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.fail("get", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.fail("set", key, err)
		return
	}
	ctx, cancel := s.opCtx()
	defer cancel()
	if err := s.client.Set(ctx, s.namespace+key, raw, 0).Err(); err != nil {
		s.fail("set", key, err)
	}
}

func (s *RedisStore) Remove(key string) {
	ctx, cancel := s.opCtx()
	defer cancel()
	if err := s.client.Del(ctx, s.namespace+key).Err(); err != nil {
		s.fail("remove", key, err)
	}
}

func (s *RedisStore) Clear() {
	for _, key := range s.Keys("") {
		s.Remove(key)
	}
}

// Keys scans the namespace for keys beginning with prefix. The namespace
// prefix is stripped from the result.
func (s *RedisStore) Keys(prefix string) []string {
	ctx, cancel := s.opCtx()
	defer cancel()

	var keys []string
	iter := s.client.Scan(ctx, 0, s.namespace+prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(s.namespace):])
	}
	if err := iter.Err(); err != nil {
		s.fail("keys", prefix, err)
	}
	return keys
}

func (s *RedisStore) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *RedisStore) fail(op, key string, err error) {
	s.log.Warn().Err(err).Str("op", op).Str("key", key).Msg("redis storage degraded")
	if s.hook != nil {
		s.hook(op, key, err)
	}
}
