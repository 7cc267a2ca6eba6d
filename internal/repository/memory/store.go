package memory

import (
	"context"
	"fmt"
	"lottery-engine/internal/repository"
	"sync"

	"github.com/patrickmn/go-cache"
)

var _ repository.Store = (*Store)(nil)

// Store is an in-process ledger backed by go-cache. Transactions are
// serialised with a store-wide lock and applied only on success.
type Store struct {
	items *cache.Cache
	txMu  sync.Mutex
}

func New() *Store {
	return &Store{items: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected value type %T at %s", v, key)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	raw := make([]byte, len(value))
	copy(raw, value)
	s.items.Set(key, raw, cache.NoExpiration)
	return nil
}

// WithTransaction executes a function within a transaction
func (s *Store) WithTransaction(ctx context.Context, fn func(tx repository.Executor) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	buf := repository.NewBuffer(s)
	if err := fn(buf); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return buf.Each(func(key string, value []byte) error {
		return s.Put(ctx, key, value)
	})
}

// SaveSnapshot writes every entry to path
func (s *Store) SaveSnapshot(path string) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := s.items.SaveFile(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot merges entries from path into the store; existing keys win
func (s *Store) LoadSnapshot(path string) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := s.items.LoadFile(path); err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	return nil
}

// Len reports the number of stored keys
func (s *Store) Len() int {
	return s.items.ItemCount()
}
