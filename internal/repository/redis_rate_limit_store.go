package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"roteiro/backend/internal/model"
)

const redisKeyPrefix = "ratelimit:"

// redisRateLimitStore keeps sliding-window records in Redis sorted sets,
// one set per (identifier, endpoint), scored by epoch seconds. Used when
// several worker processes must share rate-limit state.
type redisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a Redis-backed sliding-window store.
func NewRedisRateLimitStore(client *redis.Client) RateLimitStore {
	return &redisRateLimitStore{client: client}
}

func windowKey(identifier, endpoint string) string {
	return redisKeyPrefix + identifier + ":" + endpoint
}

func (s *redisRateLimitStore) TrimAndCount(ctx context.Context, identifier, endpoint string, cutoff int64) (int, error) {
	key := windowKey(identifier, endpoint)

	if err := s.client.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("(%d", cutoff)).Err(); err != nil {
		return 0, err
	}

	count, err := s.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *redisRateLimitStore) Record(ctx context.Context, rec model.RateLimitRecord) error {
	key := windowKey(rec.Identifier, rec.Endpoint)

	// Members need a unique suffix: several requests can land on the same
	// second and ZAdd would collapse them otherwise.
	member := fmt.Sprintf("%d-%s", rec.Timestamp, uuid.NewString())
	if err := s.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(rec.Timestamp),
		Member: member,
	}).Err(); err != nil {
		return err
	}

	// Let idle keys expire once the window has fully passed.
	return s.client.Expire(ctx, key, time.Duration(rec.WindowSeconds)*time.Second).Err()
}

func (s *redisRateLimitStore) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	var removed int64
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n, err := s.client.ZRemRangeByScore(ctx, iter.Val(), "-inf", fmt.Sprintf("(%d", cutoff)).Result()
		if err != nil {
			return removed, err
		}
		removed += n
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, nil
}
