package repository

import (
	"context"
	"sync"
)

// Buffer stages writes over a parent Executor. Reads see staged values first.
// Backends without native transactions commit a Buffer after fn succeeds and
// simply drop it on failure.
type Buffer struct {
	parent Executor

	mu     sync.Mutex
	writes map[string][]byte
	order  []string
}

func NewBuffer(parent Executor) *Buffer {
	return &Buffer{
		parent: parent,
		writes: make(map[string][]byte),
	}
}

func (b *Buffer) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	v, ok := b.writes[key]
	b.mu.Unlock()
	if ok {
		return clone(v), nil
	}
	return b.parent.Get(ctx, key)
}

func (b *Buffer) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.writes[key]; !ok {
		b.order = append(b.order, key)
	}
	b.writes[key] = clone(value)
	return nil
}

// Len reports the number of distinct staged keys
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// Each visits staged writes in first-write order and stops at the first error
func (b *Buffer) Each(fn func(key string, value []byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range b.order {
		if err := fn(k, b.writes[k]); err != nil {
			return err
		}
	}
	return nil
}

func clone(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
