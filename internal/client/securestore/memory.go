package securestore

import (
	"context"

	"github.com/johnp-05/sumativatr1/internal/common"
)

// MemoryStore is an in-memory Store used in tests and as a stand-in when
// no persistent storage is wanted. Not safe for concurrent use; callers
// serialize access the same way they do for the file store.
type MemoryStore struct {
	m map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: map[string]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := s.m[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.m[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(s.m, key)
	return nil
}
