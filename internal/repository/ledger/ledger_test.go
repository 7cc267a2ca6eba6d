package ledger

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/repository/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (*repository.Repositories, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewRepositories(store), store
}

func TestAccountRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	_, err := repos.Accounts.GetAccount(ctx, "acc-1")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	upgraded := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	account := &model.Account{
		ID:              "acc-1",
		Name:            "alice",
		Balance:         875,
		VipLevel:        2,
		VipUpgradeDate:  &upgraded,
		JoinDate:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LastDailyBonus:  "2024-02-01",
		LoginStreak:     3,
		ReferralApplied: true,
		ReferredBy:      "FRIEND42",
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.Accounts.PutAccount(ctx, account))

	got, err := repos.Accounts.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, account.Balance, got.Balance)
	assert.Equal(t, account.ReferredBy, got.ReferredBy)
	assert.True(t, got.VipUpgradeDate.Equal(upgraded))
	assert.True(t, got.JoinDate.Equal(account.JoinDate))
	assert.Equal(t, account.LoginStreak, got.LoginStreak)
}

func TestAccountRepository_Index(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	ids, err := repos.Accounts.ListAccountIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repos.Accounts.RegisterAccountID(ctx, "a"))
	require.NoError(t, repos.Accounts.RegisterAccountID(ctx, "b"))
	require.NoError(t, repos.Accounts.RegisterAccountID(ctx, "a"))

	ids, err = repos.Accounts.ListAccountIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestBetRepository_CapsHistory(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	bets := make([]*model.Bet, 0, model.MaxHistoryEntries+5)
	for i := 0; i < model.MaxHistoryEntries+5; i++ {
		bets = append(bets, &model.Bet{ID: fmt.Sprintf("bet-%d", i), Status: model.BetPending})
	}
	require.NoError(t, repos.Bets.PutBets(ctx, "acc", bets))

	got, err := repos.Bets.GetBets(ctx, "acc")
	require.NoError(t, err)
	require.Len(t, got, model.MaxHistoryEntries)
	assert.Equal(t, "bet-0", got[0].ID)
	assert.Equal(t, fmt.Sprintf("bet-%d", model.MaxHistoryEntries-1), got[len(got)-1].ID)
}

func TestBetRepository_RoundTripKeepsResolution(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	bet := &model.Bet{
		ID: "b1", AccountID: "acc", DrawKind: model.DrawMini, SelectedDigit: 7,
		Stake: 100, EntryFee: 25, Multiplier: 2, TotalCost: 125, PotentialPayout: 250,
		Status: model.BetPending, IsAutoBet: true, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, bet.Settle(7, time.Now().UTC()))
	require.NoError(t, repos.Bets.PutBets(ctx, "acc", []*model.Bet{bet}))

	got, err := repos.Bets.GetBets(ctx, "acc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.BetWon, got[0].Status)
	assert.Equal(t, int64(250), got[0].Payout)
	assert.Equal(t, 7, *got[0].WinningDigit)
	assert.True(t, got[0].IsAutoBet)
	assert.Equal(t, int64(25), got[0].EntryFee)
}

func TestTransactionRepository_CapsLog(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	txs := make([]*model.Transaction, 0, model.MaxHistoryEntries+1)
	for i := 0; i < model.MaxHistoryEntries+1; i++ {
		txs = append(txs, &model.Transaction{ID: fmt.Sprintf("txn_%d", i), Metadata: map[string]string{"n": "1"}})
	}
	require.NoError(t, repos.Transactions.PutTransactions(ctx, "acc", txs))

	got, err := repos.Transactions.GetTransactions(ctx, "acc")
	require.NoError(t, err)
	assert.Len(t, got, model.MaxHistoryEntries)
	assert.Equal(t, "1", got[0].Metadata["n"])
}

func TestAutoBetRepository_MissingIsNil(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	cfg, err := repos.AutoBets.GetAutoBetConfig(ctx, "acc")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	require.NoError(t, repos.AutoBets.PutAutoBetConfig(ctx, &model.AutoBetConfig{AccountID: "acc", MaxBets: 3, Enabled: true}))
	cfg, err = repos.AutoBets.GetAutoBetConfig(ctx, "acc")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 3, cfg.MaxBets)
}

func TestSettingsRepository_MergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	repos, store := newRepos(t)

	settings, err := repos.Settings.GetSettings(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)

	// a document written by an older version that only knows two fields
	require.NoError(t, store.Put(ctx, repository.SettingsKey("acc"), []byte(`{"theme":"light","auto_play":true}`)))

	settings, err = repos.Settings.GetSettings(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)
	assert.True(t, settings.AutoPlay)
	assert.Equal(t, "INR", settings.Currency)
	assert.True(t, settings.SoundEnabled)
}

func TestDrawResultRepository_Caps(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	results := make([]*model.DrawResult, model.MaxDrawResults+10)
	for i := range results {
		results[i] = &model.DrawResult{DrawKind: model.DrawMain, WinningDigit: i % 10}
	}
	require.NoError(t, repos.DrawResults.PutDrawResults(ctx, results))

	got, err := repos.DrawResults.GetDrawResults(ctx)
	require.NoError(t, err)
	assert.Len(t, got, model.MaxDrawResults)
}

func TestRepositories_ShareTransaction(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)
	require.NoError(t, repos.Accounts.PutAccount(ctx, &model.Account{ID: "acc", Balance: 1000}))

	boom := errors.New("history write failed")
	err := repos.DB.WithTransaction(ctx, func(tx repository.Executor) error {
		account, err := repos.Accounts.GetAccount(ctx, "acc", tx)
		require.NoError(t, err)
		account.Balance = 875
		require.NoError(t, repos.Accounts.PutAccount(ctx, account, tx))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	account, err := repos.Accounts.GetAccount(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), account.Balance)
}

func TestBase_DecodeError(t *testing.T) {
	ctx := context.Background()
	repos, store := newRepos(t)
	require.NoError(t, store.Put(ctx, repository.BetsKey("acc"), []byte("not json")))

	_, err := repos.Bets.GetBets(ctx, "acc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode bets:acc")
}
