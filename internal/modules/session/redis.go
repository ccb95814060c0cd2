package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rideapp/internal/modules/estimate"
)

const keyPrefix = "rideapp:session:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func dataKey(id string) string      { return keyPrefix + id }
func claimKey(id, op string) string { return keyPrefix + id + ":claim:" + op }

func (s *RedisStore) Load(ctx context.Context, id string) (estimate.Data, error) {
	raw, err := s.rdb.Get(ctx, dataKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return estimate.Data{}, ErrNotFound
	}
	if err != nil {
		return estimate.Data{}, fmt.Errorf("load session: %w", err)
	}
	var d estimate.Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return estimate.Data{}, fmt.Errorf("decode session: %w", err)
	}
	return d, nil
}

// Save writes data and refreshes the session ttl.
func (s *RedisStore) Save(ctx context.Context, id string, data estimate.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, dataKey(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, dataKey(id)).Err()
}

func (s *RedisStore) Claim(ctx context.Context, id, op string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, claimKey(id, op), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", op, err)
	}
	return ok, nil
}
