package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// WindowHit is the outcome of recording one admission attempt.
type WindowHit struct {
	Allowed     bool
	Attempts    int
	RetryAfter  time.Duration
	JustBlocked bool
}

// WindowState is a read-only view of one key's window, for status queries.
type WindowState struct {
	Attempts     int
	BlockedUntil *time.Time
}

// WindowStore keeps sliding-window attempt state per key. The memory
// implementation is per-instance; the redis implementation shares state
// across instances behind the same interface.
type WindowStore interface {
	Hit(ctx context.Context, key string, now time.Time) (WindowHit, error)
	Peek(ctx context.Context, key string, now time.Time) (WindowState, error)
}

const windowShardCount = 32

type rateWindow struct {
	attempts     []time.Time
	blockedUntil time.Time
}

type windowShard struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
}

// memoryWindowStore shards keys across independently locked maps so that
// concurrent request handlers only contend when they hash to the same shard.
// Access to a given key's window is always serialized by its shard lock.
type memoryWindowStore struct {
	window      time.Duration
	maxAttempts int
	cooldown    time.Duration
	shards      [windowShardCount]*windowShard
	gcThreshold int
}

// NewMemoryWindowStore creates the in-process window store.
func NewMemoryWindowStore(window time.Duration, maxAttempts int, cooldown time.Duration) WindowStore {
	store := &memoryWindowStore{
		window:      window,
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		gcThreshold: 1024,
	}
	for i := range store.shards {
		store.shards[i] = &windowShard{windows: make(map[string]*rateWindow)}
	}
	return store
}

func (s *memoryWindowStore) shardFor(key string) *windowShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return s.shards[h.Sum32()%windowShardCount]
}

func (s *memoryWindowStore) Hit(_ context.Context, key string, now time.Time) (WindowHit, error) {
	shard := s.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[key]
	if !ok {
		w = &rateWindow{}
		shard.windows[key] = w
		s.gcLocked(shard, now)
	}

	w.prune(now, s.window)

	if w.blockedUntil.After(now) {
		return WindowHit{
			Attempts:   len(w.attempts),
			RetryAfter: w.blockedUntil.Sub(now),
		}, nil
	}

	if len(w.attempts) >= s.maxAttempts {
		w.blockedUntil = now.Add(s.cooldown)
		return WindowHit{
			Attempts:    len(w.attempts),
			RetryAfter:  s.cooldown,
			JustBlocked: true,
		}, nil
	}

	w.attempts = append(w.attempts, now)
	return WindowHit{Allowed: true, Attempts: len(w.attempts)}, nil
}

func (s *memoryWindowStore) Peek(_ context.Context, key string, now time.Time) (WindowState, error) {
	shard := s.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[key]
	if !ok {
		return WindowState{}, nil
	}

	w.prune(now, s.window)

	state := WindowState{Attempts: len(w.attempts)}
	if w.blockedUntil.After(now) {
		until := w.blockedUntil
		state.BlockedUntil = &until
	}
	return state, nil
}

// gcLocked drops fully idle windows once the shard grows past the threshold.
// Called with the shard lock held.
func (s *memoryWindowStore) gcLocked(shard *windowShard, now time.Time) {
	if len(shard.windows) < s.gcThreshold {
		return
	}
	for key, w := range shard.windows {
		w.prune(now, s.window)
		if len(w.attempts) == 0 && !w.blockedUntil.After(now) {
			delete(shard.windows, key)
		}
	}
}

func (w *rateWindow) prune(now time.Time, window time.Duration) {
	cutoff := now.Add(-window)
	kept := w.attempts[:0]
	for _, at := range w.attempts {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	w.attempts = kept
}
