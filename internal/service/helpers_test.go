package service

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/config"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/repository/ledger"
	"lottery-engine/internal/repository/memory"
	"lottery-engine/internal/scheduler"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

// fixedRandom replays the given digits and floats in a loop
type fixedRandom struct {
	mu     sync.Mutex
	digits []int
	floats []float64
	di, fi int
}

func (r *fixedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.digits) == 0 {
		return 0
	}
	d := r.digits[r.di%len(r.digits)]
	r.di++
	return d % n
}

func (r *fixedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[r.fi%len(r.floats)]
	r.fi++
	return f
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) named(name string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// flakyStore fails the next n transactions at commit time, after fn ran
type flakyStore struct {
	repository.Store
	mu       sync.Mutex
	failures int
	attempts int
}

var errInjectedCommit = errors.New("injected commit failure")

func (f *flakyStore) WithTransaction(ctx context.Context, fn func(tx repository.Executor) error) error {
	f.mu.Lock()
	f.attempts++
	fail := f.failures > 0
	if fail {
		f.failures--
	}
	f.mu.Unlock()

	if !fail {
		return f.Store.WithTransaction(ctx, fn)
	}
	err := f.Store.WithTransaction(ctx, func(tx repository.Executor) error {
		if err := fn(tx); err != nil {
			return err
		}
		return errInjectedCommit
	})
	return fmt.Errorf("%w: %w", model.ErrPersistence, err)
}

func (f *flakyStore) failNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
	f.attempts = 0
}

// failingPutStore rejects transactional writes to keys with the given prefix.
// A positive limit stops failing after that many rejected writes.
type failingPutStore struct {
	repository.Store
	mu     sync.Mutex
	prefix string
	limit  int
	failed int
}

type failingPutExecutor struct {
	repository.Executor
	store *failingPutStore
}

func (e failingPutExecutor) Put(ctx context.Context, key string, value []byte) error {
	if e.store.reject(key) {
		return fmt.Errorf("disk quota exceeded writing %s", key)
	}
	return e.Executor.Put(ctx, key, value)
}

func (f *failingPutStore) reject(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.prefix == "" || !strings.HasPrefix(key, f.prefix) {
		return false
	}
	if f.limit > 0 && f.failed >= f.limit {
		return false
	}
	f.failed++
	return true
}

func (f *failingPutStore) failWrites(prefix string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefix = prefix
	f.limit = n
	f.failed = 0
}

func (f *failingPutStore) WithTransaction(ctx context.Context, fn func(tx repository.Executor) error) error {
	return f.Store.WithTransaction(ctx, func(tx repository.Executor) error {
		return fn(failingPutExecutor{Executor: tx, store: f})
	})
}

type testEnv struct {
	ctx      context.Context
	store    repository.Store
	repos    *repository.Repositories
	sched    *scheduler.ManualScheduler
	random   *fixedRandom
	events   *recordingPublisher
	services *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, memory.New())
}

func newTestEnvWithStore(t *testing.T, store repository.Store) *testEnv {
	t.Helper()
	env := &testEnv{
		ctx:    context.Background(),
		store:  store,
		repos:  ledger.NewRepositories(store),
		sched:  scheduler.NewManualScheduler(testStart),
		random: &fixedRandom{},
		events: &recordingPublisher{},
	}
	env.services = NewServices(Dependencies{
		Repos:     env.repos,
		Scheduler: env.sched,
		Clock:     env.sched,
		Publisher: env.events,
		Random:    env.random,
		Game:      config.DefaultGame(),
		Logger:    zerolog.Nop(),
	})
	return env
}

func (e *testEnv) openAccount(t *testing.T, balance int64) *model.Account {
	t.Helper()
	account, err := e.services.Accounts.OpenAccount(e.ctx, "player", balance)
	require.NoError(t, err)
	return account
}

func (e *testEnv) balance(t *testing.T, accountID string) int64 {
	t.Helper()
	b, err := e.services.Accounts.GetBalance(e.ctx, accountID)
	require.NoError(t, err)
	return b
}

func (e *testEnv) transactions(t *testing.T, accountID string) []*model.Transaction {
	t.Helper()
	txs, err := e.repos.Transactions.GetTransactions(e.ctx, accountID)
	require.NoError(t, err)
	return txs
}

func (e *testEnv) bets(t *testing.T, accountID string) []*model.Bet {
	t.Helper()
	bets, err := e.repos.Bets.GetBets(e.ctx, accountID)
	require.NoError(t, err)
	return bets
}

func (e *testEnv) enableAutoPlay(t *testing.T, accountID string) {
	t.Helper()
	on := true
	_, err := e.services.Settings.UpdateSettings(e.ctx, accountID, model.SettingsPatch{AutoPlay: &on})
	require.NoError(t, err)
}

func intPtr(v int) *int { return &v }
