package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shopgate/backend/internal/hashutil"
)

// redisWindowStore shares window state across instances: attempt timestamps
// live in a per-key sorted set, the cool-down in a key with TTL. The two
// operations are not transactional, so the cap is approximate under races
// between instances; that is the documented trade-off of horizontal scaling.
type redisWindowStore struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int
	cooldown    time.Duration
}

// NewRedisWindowStore creates a redis-backed window store for multi-instance
// deployments.
func NewRedisWindowStore(client *redis.Client, window time.Duration, maxAttempts int, cooldown time.Duration) WindowStore {
	return &redisWindowStore{
		client:      client,
		window:      window,
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
	}
}

func (s *redisWindowStore) attemptsKey(key string) string {
	return "shopgate:rl:" + hashutil.SHA256Hex(key)
}

func (s *redisWindowStore) blockKey(key string) string {
	return s.attemptsKey(key) + ":block"
}

func (s *redisWindowStore) Hit(ctx context.Context, key string, now time.Time) (WindowHit, error) {
	ttl, err := s.client.PTTL(ctx, s.blockKey(key)).Result()
	if err != nil {
		return WindowHit{}, fmt.Errorf("check cool-down: %w", err)
	}
	if ttl > 0 {
		return WindowHit{RetryAfter: ttl}, nil
	}

	attempts, err := s.pruneAndCount(ctx, key, now)
	if err != nil {
		return WindowHit{}, err
	}

	if attempts >= s.maxAttempts {
		if err := s.client.Set(ctx, s.blockKey(key), "1", s.cooldown).Err(); err != nil {
			return WindowHit{}, fmt.Errorf("set cool-down: %w", err)
		}
		return WindowHit{
			Attempts:    attempts,
			RetryAfter:  s.cooldown,
			JustBlocked: true,
		}, nil
	}

	attemptsKey := s.attemptsKey(key)
	member := strconv.FormatInt(now.UnixNano(), 10)
	if err := s.client.ZAdd(ctx, attemptsKey, redis.Z{Score: float64(now.UnixNano()), Member: member}).Err(); err != nil {
		return WindowHit{}, fmt.Errorf("record attempt: %w", err)
	}
	if err := s.client.Expire(ctx, attemptsKey, s.window).Err(); err != nil {
		return WindowHit{}, fmt.Errorf("expire attempts: %w", err)
	}

	return WindowHit{Allowed: true, Attempts: attempts + 1}, nil
}

func (s *redisWindowStore) Peek(ctx context.Context, key string, now time.Time) (WindowState, error) {
	state := WindowState{}

	ttl, err := s.client.PTTL(ctx, s.blockKey(key)).Result()
	if err != nil {
		return state, fmt.Errorf("check cool-down: %w", err)
	}
	if ttl > 0 {
		until := now.Add(ttl)
		state.BlockedUntil = &until
	}

	attempts, err := s.pruneAndCount(ctx, key, now)
	if err != nil {
		return state, err
	}
	state.Attempts = attempts
	return state, nil
}

func (s *redisWindowStore) pruneAndCount(ctx context.Context, key string, now time.Time) (int, error) {
	attemptsKey := s.attemptsKey(key)
	cutoff := strconv.FormatInt(now.Add(-s.window).UnixNano(), 10)

	if err := s.client.ZRemRangeByScore(ctx, attemptsKey, "-inf", cutoff).Err(); err != nil {
		return 0, fmt.Errorf("prune attempts: %w", err)
	}
	count, err := s.client.ZCard(ctx, attemptsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return int(count), nil
}
