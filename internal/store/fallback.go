package store

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore implements FallbackStore on an in-memory TTL cache. Plans
// stored here survive only as long as the process; the gateway marks them
// as fallback records so the caller can re-save later.
type MemoryStore struct {
	cache *cache.Cache
	now   func() time.Time
}

// NewMemoryStore creates the fallback store. Entries are kept for 24 hours
// and purged every hour, long enough for a caller to retry a durable save.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(24*time.Hour, time.Hour),
		now:   time.Now,
	}
}

// Put stores a record, assigning a plan-{timestamp} id when none is set.
// Writing an id that already exists overwrites it.
func (s *MemoryStore) Put(rec *PersistedRecord) (*PersistedRecord, error) {
	stored := *rec
	now := s.now().UTC()
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("plan-%d", now.UnixMilli())
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	stored.Fallback = true

	s.cache.Set(stored.ID, &stored, cache.DefaultExpiration)
	return &stored, nil
}

// Get retrieves a record by id.
func (s *MemoryStore) Get(id string) (*PersistedRecord, bool) {
	if x, found := s.cache.Get(id); found {
		return x.(*PersistedRecord), true
	}
	return nil, false
}
