package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	values    []string
	expiresAt time.Time
}

// MemoryStore keeps notifications in process memory. Entries expire ttl
// after they were last set.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.data[memoryKey(sid, key)] = entry{
		values:    []string{value},
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) TakeAll(_ context.Context, sid, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := memoryKey(sid, key)
	e, ok := s.data[k]
	if !ok {
		return nil, nil
	}
	delete(s.data, k)
	if s.now().After(e.expiresAt) {
		return nil, nil
	}
	return e.values, nil
}

// Len reports how many entries are held, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// sweep drops expired entries. Caller holds mu.
func (s *MemoryStore) sweep() {
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}

func memoryKey(sid, key string) string {
	return sid + "\x00" + key
}
