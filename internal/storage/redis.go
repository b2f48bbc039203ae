package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexiscope/internal/middleware"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps the blobs of a profile in one hash, one field per key.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

func NewRedisStore(rdb *goredis.Client, prefix string) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "lexiscope"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// DialRedis connects and pings the server.
func DialRedis(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
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
	return rdb, nil
}

func (s *RedisStore) hash(profileID uuid.UUID) string {
	return s.prefix + ":profile:" + profileID.String()
}

func (s *RedisStore) Get(ctx context.Context, profileID uuid.UUID, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.hash(profileID), key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		middleware.GetLogger(ctx).Error("Error reading redis blob", "error", err, "key", key)
		return "", false, fmt.Errorf("RedisStore.Get: %w", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, profileID uuid.UUID, key, value string) error {
	if err := s.rdb.HSet(ctx, s.hash(profileID), key, value).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Error writing redis blob", "error", err, "key", key)
		return fmt.Errorf("RedisStore.Set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, profileID uuid.UUID, key string) error {
	if err := s.rdb.HDel(ctx, s.hash(profileID), key).Err(); err != nil {
		return fmt.Errorf("RedisStore.Delete: %w", err)
	}
	return nil
}
