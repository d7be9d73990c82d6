package memory

import (
	"context"
	"sync"
)

type object struct {
	contentType string
	data        []byte
}

// Store guarda fotos en memoria (dev/tests).
type Store struct {
	mu   sync.RWMutex
	byID map[string]object
}

func NewStore() *Store {
	return &Store{byID: make(map[string]object)}
}

func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.byID[key] = object{contentType: contentType, data: cp}
	return nil
}

// Get expone el blob para asserts en tests.
func (s *Store) Get(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[key]
	if !ok {
		return nil, "", false
	}
	return o.data, o.contentType, true
}
