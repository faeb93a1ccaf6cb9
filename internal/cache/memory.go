package cache

import (
	"context"
	"sync"
	"time"
)

// MemStore is the in-process backend: a map with a tag index. It serves
// single-instance runs and tests; multi-instance deployments point the
// same Store interface at Redis instead.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	byTag   map[string]map[string]bool

	now func() time.Time
}

type memEntry struct {
	e         Entry
	expiresAt time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		entries: make(map[string]memEntry),
		byTag:   make(map[string]map[string]bool),
		now:     time.Now,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	me, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.now().After(me.expiresAt) {
		return Entry{}, false, nil
	}
	return me.e, true, nil
}

func (s *MemStore) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[key]; ok {
		s.unindex(key, old.e.Tags)
	}

	s.entries[key] = memEntry{e: e, expiresAt: s.now().Add(ttl)}
	for _, tag := range e.Tags {
		keys := s.byTag[tag]
		if keys == nil {
			keys = make(map[string]bool)
			s.byTag[tag] = keys
		}
		keys[key] = true
	}
	return nil
}

func (s *MemStore) Invalidate(ctx context.Context, tags ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for _, tag := range tags {
		for key := range s.byTag[tag] {
			if me, ok := s.entries[key]; ok {
				s.unindex(key, me.e.Tags)
				delete(s.entries, key)
				dropped++
			}
		}
		delete(s.byTag, tag)
	}
	return dropped, nil
}

func (s *MemStore) unindex(key string, tags []string) {
	for _, tag := range tags {
		if keys := s.byTag[tag]; keys != nil {
			delete(keys, key)
			if len(keys) == 0 {
				delete(s.byTag, tag)
			}
		}
	}
}
