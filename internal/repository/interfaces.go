package repository

import (
	"context"
	"errors"
	"lottery-engine/internal/model"
)

// ErrKeyNotFound is returned by an Executor when the key holds no value
var ErrKeyNotFound = errors.New("key not found")

// Executor reads and writes raw ledger values, either directly or inside an open transaction
type Executor interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// DBManager provides ledger transaction management
type DBManager interface {
	// WithTransaction executes a function within a transaction; writes made
	// through tx become visible only if fn returns nil and the commit succeeds
	WithTransaction(ctx context.Context, fn func(tx Executor) error) error
}

// Store is a ledger backend
type Store interface {
	Executor
	DBManager
}

// AccountRepository defines operations for accounts and the account index
type AccountRepository interface {
	// GetAccount returns model.ErrAccountNotFound when the account does not exist
	GetAccount(ctx context.Context, accountID string, tx ...Executor) (*model.Account, error)
	PutAccount(ctx context.Context, account *model.Account, tx ...Executor) error

	// ListAccountIDs returns every registered account id in registration order
	ListAccountIDs(ctx context.Context, tx ...Executor) ([]string, error)

	// RegisterAccountID appends an id to the index; registering twice is a no-op
	RegisterAccountID(ctx context.Context, accountID string, tx ...Executor) error
}

// BetRepository stores the per-account bet history, newest first
type BetRepository interface {
	GetBets(ctx context.Context, accountID string, tx ...Executor) ([]*model.Bet, error)

	// PutBets keeps at most model.MaxHistoryEntries bets, dropping the oldest
	PutBets(ctx context.Context, accountID string, bets []*model.Bet, tx ...Executor) error
}

// TransactionRepository stores the per-account transaction log, newest first
type TransactionRepository interface {
	GetTransactions(ctx context.Context, accountID string, tx ...Executor) ([]*model.Transaction, error)

	// PutTransactions keeps at most model.MaxHistoryEntries entries, dropping the oldest
	PutTransactions(ctx context.Context, accountID string, transactions []*model.Transaction, tx ...Executor) error
}

type AutoBetRepository interface {
	// GetAutoBetConfig returns nil without error when no config was stored
	GetAutoBetConfig(ctx context.Context, accountID string, tx ...Executor) (*model.AutoBetConfig, error)
	PutAutoBetConfig(ctx context.Context, cfg *model.AutoBetConfig, tx ...Executor) error
}

type SettingsRepository interface {
	// GetSettings merges stored values over model.DefaultSettings
	GetSettings(ctx context.Context, accountID string, tx ...Executor) (model.Settings, error)
	PutSettings(ctx context.Context, accountID string, settings model.Settings, tx ...Executor) error
}

// DrawResultRepository stores the global list of recent draws, newest first
type DrawResultRepository interface {
	GetDrawResults(ctx context.Context, tx ...Executor) ([]*model.DrawResult, error)

	// PutDrawResults keeps at most model.MaxDrawResults entries
	PutDrawResults(ctx context.Context, results []*model.DrawResult, tx ...Executor) error
}

// Repositories bundles the typed repositories sharing one store
type Repositories struct {
	DB           DBManager
	Accounts     AccountRepository
	Bets         BetRepository
	Transactions TransactionRepository
	AutoBets     AutoBetRepository
	Settings     SettingsRepository
	DrawResults  DrawResultRepository
}
