package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/resorcera/course_api/model"
	"github.com/resorcera/course_api/services/repositories"
	"github.com/resorcera/course_api/shared"
)

type RateLimitEntry struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// RateLimitStore holds one window per key. Get returns nil, nil for an unknown key.
type RateLimitStore interface {
	Get(ctx context.Context, key string) (*RateLimitEntry, error)
	Set(ctx context.Context, key string, entry RateLimitEntry) error
	SweepExpired(ctx context.Context, now time.Time) error
}

// MemoryRateLimitStore keeps windows in process memory. Entries are only removed
// by SweepExpired, so a flood of distinct keys grows the map until the next sweep.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]RateLimitEntry
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{entries: make(map[string]RateLimitEntry)}
}

func (s *MemoryRateLimitStore) Get(_ context.Context, key string) (*RateLimitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *MemoryRateLimitStore) Set(_ context.Context, key string, entry RateLimitEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	return nil
}

func (s *MemoryRateLimitStore) SweepExpired(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if now.After(entry.ResetAt) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryRateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RedisRateLimitStore shares windows between instances. Each entry is a sonic
// encoded value that Redis expires at ResetAt, so SweepExpired has nothing to do.
type RedisRateLimitStore struct {
	client *redis.Client
}

func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

func (s *RedisRateLimitStore) Get(ctx context.Context, key string) (*RateLimitEntry, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry RateLimitEntry
	if err := shared.JSONUnmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *RedisRateLimitStore) Set(ctx context.Context, key string, entry RateLimitEntry) error {
	data, err := shared.JSONMarshal(entry)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		// Keep the key a moment past ResetAt so a request landing exactly on
		// the boundary still sees the closed window.
		pipe.PExpireAt(ctx, key, entry.ResetAt.Add(time.Second))
		return nil
	})
	return err
}

func (s *RedisRateLimitStore) SweepExpired(context.Context, time.Time) error {
	return nil
}

// GormRateLimitStore persists windows in the relational store.
type GormRateLimitStore struct {
	repo *repositories.RateLimitRepository
}

func NewGormRateLimitStore(repo *repositories.RateLimitRepository) *GormRateLimitStore {
	return &GormRateLimitStore{repo: repo}
}

func (s *GormRateLimitStore) Get(ctx context.Context, key string) (*RateLimitEntry, error) {
	row, err := s.repo.Get(ctx, key)
	if err != nil || row == nil {
		return nil, err
	}
	return &RateLimitEntry{Count: row.Count, ResetAt: row.ResetAt}, nil
}

func (s *GormRateLimitStore) Set(ctx context.Context, key string, entry RateLimitEntry) error {
	return s.repo.Save(ctx, &model.RateLimit{
		Key:     key,
		Count:   entry.Count,
		ResetAt: entry.ResetAt,
	})
}

func (s *GormRateLimitStore) SweepExpired(ctx context.Context, now time.Time) error {
	return s.repo.DeleteExpired(ctx, now)
}
