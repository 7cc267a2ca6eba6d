package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lottery-engine/internal/repository"
)

// base provides JSON access to a ledger store
type base struct {
	store repository.Store
}

// getExecutor returns either the provided tx or the store
func (r *base) getExecutor(tx ...repository.Executor) repository.Executor {
	if len(tx) > 0 && tx[0] != nil {
		return tx[0]
	}
	return r.store
}

// load decodes the value at key into dst and reports whether it existed
func (r *base) load(ctx context.Context, key string, dst any, tx ...repository.Executor) (bool, error) {
	raw, err := r.getExecutor(tx...).Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (r *base) save(ctx context.Context, key string, v any, tx ...repository.Executor) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.getExecutor(tx...).Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// capHead keeps the first n entries of a newest-first list
func capHead[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
