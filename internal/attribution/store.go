package attribution

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// The storage key prefix predates this backend; the original site kept the
// same payload in sessionStorage under "glx_utm".
const storageKeyPrefix = "glx_utm:"

// Store persists one Params set per visitor session.
type Store interface {
	// Save overwrites the stored set for the session. No merge: a partial
	// new set replaces the old complete set.
	Save(ctx context.Context, sessionID string, params Params) error
	// Load returns the stored set, or an empty Params when nothing is
	// stored or the entry cannot be decoded.
	Load(ctx context.Context, sessionID string) (Params, error)
}

// RedisStore keeps attribution in Redis with a safety TTL so entries from
// abandoned sessions age out.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store from a redis URL.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, sessionID string, params Params) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, storageKeyPrefix+sessionID, payload, s.ttl).Err()
}

// Load implements Store. A missing or corrupt entry yields empty Params.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (Params, error) {
	payload, err := s.client.Get(ctx, storageKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Params{}, nil
		}
		return Params{}, err
	}
	var params Params
	if err := json.Unmarshal(payload, &params); err != nil {
		return Params{}, nil
	}
	return params, nil
}

// Ping checks connectivity for startup diagnostics.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is the fallback store used when no Redis is configured.
// Entries expire lazily after the TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	params  Params
	savedAt time.Time
}

// NewMemoryStore creates an in-process store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), ttl: ttl}
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, sessionID string, params Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{params: params, savedAt: time.Now()}
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, sessionID string) (Params, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok || time.Since(entry.savedAt) > s.ttl {
		return Params{}, nil
	}
	return entry.params, nil
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
