package memory

import (
	"context"
	"errors"
	"lottery-engine/internal/repository"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetPut(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, s.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestStore_WithTransaction_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.WithTransaction(ctx, func(tx repository.Executor) error {
		require.NoError(t, tx.Put(ctx, "a", []byte("1")))
		require.NoError(t, tx.Put(ctx, "b", []byte("2")))

		// not yet visible outside the transaction
		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, repository.ErrKeyNotFound)

		v, err := tx.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", string(v))
		return nil
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))
	assert.Equal(t, 2, s.Len())
}

func TestStore_WithTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Put(ctx, "a", []byte("old")))

	boom := errors.New("boom")
	err := s.WithTransaction(ctx, func(tx repository.Executor) error {
		require.NoError(t, tx.Put(ctx, "a", []byte("new")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "old", string(v))
}

func TestStore_WithTransaction_Serialises(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Put(ctx, "counter", []byte{0}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithTransaction(ctx, func(tx repository.Executor) error {
				v, err := tx.Get(ctx, "counter")
				if err != nil {
					return err
				}
				return tx.Put(ctx, "counter", []byte{v[0] + 1})
			})
		}()
	}
	wg.Wait()

	v, err := s.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, byte(50), v[0])
}

func TestStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.gob")

	s := New()
	require.NoError(t, s.Put(ctx, "account:1", []byte(`{"id":"1"}`)))
	require.NoError(t, s.SaveSnapshot(path))

	restored := New()
	require.NoError(t, restored.LoadSnapshot(path))

	v, err := restored.Get(ctx, "account:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(v))
}
