package postgres

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.Store = (*Store)(nil)

const (
	selectEntry          = `SELECT value FROM ledger_entries WHERE key = $1`
	selectEntryForUpdate = selectEntry + ` FOR UPDATE`
	upsertEntry          = `
        INSERT INTO ledger_entries (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE
        SET value = EXCLUDED.value, updated_at = NOW()`
)

// Querier interface for operations that work with both pool and transaction
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the PostgreSQL ledger backend. Every key is one row of ledger_entries.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.pool, selectEntry, key)
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return put(ctx, s.pool, key, value)
}

// WithTransaction executes a function within a database transaction
func (s *Store) WithTransaction(ctx context.Context, fn func(repository.Executor) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return classify("begin transaction", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(&txExecutor{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return classify("commit transaction", err)
	}

	return nil
}

// txExecutor locks every row it reads until the transaction ends
type txExecutor struct {
	tx pgx.Tx
}

func (e *txExecutor) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, e.tx, selectEntryForUpdate, key)
}

func (e *txExecutor) Put(ctx context.Context, key string, value []byte) error {
	return put(ctx, e.tx, key, value)
}

func get(ctx context.Context, q Querier, query, key string) ([]byte, error) {
	var value []byte
	if err := q.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return nil, classify("read "+key, err)
	}
	return value, nil
}

func put(ctx context.Context, q Querier, key string, value []byte) error {
	if _, err := q.Exec(ctx, upsertEntry, key, value); err != nil {
		return classify("write "+key, err)
	}
	return nil
}

// classify maps driver errors onto ledger errors. Failures a retry can fix
// (rollbacks, lost connections, exhausted resources) wrap model.ErrPersistence.
func classify(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrKeyNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsTransactionRollback(pgErr.Code) ||
			pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code) {
			return fmt.Errorf("%w: %s: %w", model.ErrPersistence, op, err)
		}
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	// network and pool errors carry no SQLSTATE
	return fmt.Errorf("%w: %s: %w", model.ErrPersistence, op, err)
}
