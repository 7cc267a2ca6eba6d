package redis

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"sync"

	"github.com/go-redis/redis/v8"
)

var _ repository.Store = (*Store)(nil)

// Store is the Redis ledger backend. Transactions stage their writes and
// commit them in one MULTI/EXEC pipeline; the lock only serialises
// transactions of this process.
type Store struct {
	client *redis.Client
	prefix string
	txMu   sync.Mutex
}

func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrPersistence, key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: write %s: %w", model.ErrPersistence, key, err)
	}
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
	if buf.Len() == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return buf.Each(func(key string, value []byte) error {
			pipe.Set(ctx, s.prefix+key, value, 0)
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("%w: commit transaction: %w", model.ErrPersistence, err)
	}
	return nil
}
