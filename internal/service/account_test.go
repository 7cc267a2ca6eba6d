package service

import (
	"context"
	"fmt"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/repository/memory"
	"lottery-engine/mocks/repository"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenAccount(t *testing.T) {
	env := newTestEnv(t)

	account := env.openAccount(t, 1000)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, int64(1000), account.Balance)
	assert.Equal(t, model.MinVipLevel, account.VipLevel)
	assert.Equal(t, testStart, account.JoinDate)

	ids, err := env.repos.Accounts.ListAccountIDs(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{account.ID}, ids)

	txs := env.transactions(t, account.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, model.TagSignup, txs[0].Tag)
	assert.Equal(t, int64(0), txs[0].BalanceBefore)
	assert.Equal(t, int64(1000), txs[0].BalanceAfter)

	settings, err := env.services.Settings.GetSettings(env.ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)

	assert.Len(t, env.events.named(events.AccountOpened), 1)
}

func TestOpenAccount_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Accounts.OpenAccount(env.ctx, "  ", 0)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = env.services.Accounts.OpenAccount(env.ctx, "player", -5)
	assert.ErrorIs(t, err, model.ErrValidation)

	ids, err := env.repos.Accounts.ListAccountIDs(env.ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestOpenAccount_ZeroBalanceHasNoTransaction(t *testing.T) {
	env := newTestEnv(t)

	account := env.openAccount(t, 0)

	assert.Equal(t, int64(0), env.balance(t, account.ID))
	assert.Empty(t, env.transactions(t, account.ID))
}

func TestGetAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Accounts.GetAccount(env.ctx, "")
	assert.ErrorIs(t, err, model.ErrNotAuthenticated)

	_, err = env.services.Accounts.GetAccount(env.ctx, "missing")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestAddMoney(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	trans, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 250, model.TagDeposit, map[string]string{"ref": "card"})
	require.NoError(t, err)

	assert.Equal(t, model.TransactionCredit, trans.Kind)
	assert.Equal(t, int64(100), trans.BalanceBefore)
	assert.Equal(t, int64(350), trans.BalanceAfter)
	assert.Equal(t, "card", trans.Metadata["ref"])
	assert.Contains(t, trans.ID, "txn_")
	assert.Equal(t, int64(350), env.balance(t, account.ID))

	txs := env.transactions(t, account.ID)
	require.Len(t, txs, 2)
	assert.Equal(t, trans.ID, txs[0].ID)

	updates := env.events.named(events.BalanceUpdate)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(350), updates[0].Data["balance"])
}

func TestAddMoney_Validation(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	tests := []struct {
		name   string
		amount int64
		tag    model.TransactionTag
	}{
		{name: "zero amount", amount: 0, tag: model.TagDeposit},
		{name: "negative amount", amount: -10, tag: model.TagDeposit},
		{name: "debit tag", amount: 10, tag: model.TagBet},
		{name: "credit overflows balance", amount: math.MaxInt64, tag: model.TagDeposit},
		{name: "credit one past the limit", amount: math.MaxInt64 - 99, tag: model.TagDeposit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, tt.amount, tt.tag, nil)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}

	assert.Equal(t, int64(100), env.balance(t, account.ID))
	assert.Len(t, env.transactions(t, account.ID), 1)
}

func TestDeductMoney(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 500)

	trans, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 200, model.TagWithdrawal, nil)
	require.NoError(t, err)

	assert.Equal(t, model.TransactionDebit, trans.Kind)
	assert.Equal(t, int64(500), trans.BalanceBefore)
	assert.Equal(t, int64(300), trans.BalanceAfter)
	assert.Equal(t, int64(300), env.balance(t, account.ID))
}

func TestDeductMoney_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 101, model.TagWithdrawal, nil)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	assert.Equal(t, int64(100), env.balance(t, account.ID))
	assert.Len(t, env.transactions(t, account.ID), 1)
	assert.Empty(t, env.events.named(events.BalanceUpdate))
}

func TestDeductMoney_ExactBalance(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 100, model.TagWithdrawal, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), env.balance(t, account.ID))
}

func TestDeductMoney_CreditTagRejected(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 10, model.TagWin, nil)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestTransactionLog_BalancesChain(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 1000)

	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 300, model.TagWithdrawal, nil)
	require.NoError(t, err)
	_, err = env.services.Accounts.AddMoney(env.ctx, account.ID, 40, model.TagRefund, nil)
	require.NoError(t, err)
	_, err = env.services.Accounts.DeductMoney(env.ctx, account.ID, 90, model.TagWithdrawal, nil)
	require.NoError(t, err)

	txs := env.transactions(t, account.ID)
	require.Len(t, txs, 4)
	for i, tx := range txs {
		if tx.Kind == model.TransactionCredit {
			assert.Equal(t, tx.BalanceBefore+tx.Amount, tx.BalanceAfter)
		} else {
			assert.Equal(t, tx.BalanceBefore-tx.Amount, tx.BalanceAfter)
		}
		// newest first, so each entry starts where the next older one ended
		if i+1 < len(txs) {
			assert.Equal(t, txs[i+1].BalanceAfter, tx.BalanceBefore)
		}
	}
	assert.Equal(t, txs[0].BalanceAfter, env.balance(t, account.ID))
}

func TestTransactionLog_Capped(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 0)

	for i := 0; i < model.MaxHistoryEntries+5; i++ {
		_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 1, model.TagDeposit, nil)
		require.NoError(t, err)
	}

	txs := env.transactions(t, account.ID)
	assert.Len(t, txs, model.MaxHistoryEntries)
	assert.Equal(t, int64(model.MaxHistoryEntries+5), txs[0].BalanceAfter)
	assert.Equal(t, int64(model.MaxHistoryEntries+5), env.balance(t, account.ID))
}

func TestGetTransactions_Filters(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 0)

	for i := 0; i < 60; i++ {
		_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 10, model.TagDeposit, nil)
		require.NoError(t, err)
	}
	env.sched.Advance(env.ctx, time.Hour)
	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 5, model.TagWithdrawal, nil)
	require.NoError(t, err)

	all, err := env.services.Accounts.GetTransactions(env.ctx, account.ID, model.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 50)

	debits, err := env.services.Accounts.GetTransactions(env.ctx, account.ID, model.TransactionFilter{Kind: model.TransactionDebit})
	require.NoError(t, err)
	require.Len(t, debits, 1)
	assert.Equal(t, int64(5), debits[0].Amount)

	from := testStart.Add(30 * time.Minute)
	recent, err := env.services.Accounts.GetTransactions(env.ctx, account.ID, model.TransactionFilter{From: &from, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	limited, err := env.services.Accounts.GetTransactions(env.ctx, account.ID, model.TransactionFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestGetBalanceStatistics(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 0)

	_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 1000, model.TagDeposit, nil)
	require.NoError(t, err)
	_, err = env.services.Accounts.DeductMoney(env.ctx, account.ID, 200, model.TagBet, nil)
	require.NoError(t, err)
	_, err = env.services.Accounts.AddMoney(env.ctx, account.ID, 450, model.TagWin, nil)
	require.NoError(t, err)
	_, err = env.services.Accounts.DeductMoney(env.ctx, account.ID, 100, model.TagWithdrawal, nil)
	require.NoError(t, err)

	stats, err := env.services.Accounts.GetBalanceStatistics(env.ctx, account.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), stats.TotalDeposits)
	assert.Equal(t, int64(100), stats.TotalWithdrawals)
	assert.Equal(t, int64(450), stats.TotalWinnings)
	assert.Equal(t, int64(200), stats.TotalBets)
	assert.Equal(t, int64(250), stats.NetProfit)
	assert.Equal(t, 4, stats.TransactionCount)
}

func TestCheckVipUpgrade(t *testing.T) {
	tests := []struct {
		name          string
		spend         int64
		age           time.Duration
		expectedLevel int
		upgraded      bool
	}{
		{name: "level 2 thresholds met", spend: 5000, age: 7 * 24 * time.Hour, expectedLevel: 2, upgraded: true},
		{name: "spend one short", spend: 4999, age: 7 * 24 * time.Hour, expectedLevel: 1},
		{name: "account too young", spend: 5000, age: 6 * 24 * time.Hour, expectedLevel: 1},
		{name: "partial day rounds up", spend: 5000, age: 6*24*time.Hour + time.Minute, expectedLevel: 2, upgraded: true},
		{name: "level 4", spend: 30000, age: 21 * 24 * time.Hour, expectedLevel: 4, upgraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			account := env.openAccount(t, 100000)
			_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, tt.spend, model.TagBet, nil)
			require.NoError(t, err)
			env.sched.Advance(env.ctx, tt.age)

			result, err := env.services.Accounts.CheckVipUpgrade(env.ctx, account.ID)
			require.NoError(t, err)

			assert.Equal(t, tt.upgraded, result.Upgraded)
			assert.Equal(t, tt.expectedLevel, result.Level)

			updated, err := env.services.Accounts.GetAccount(env.ctx, account.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, updated.VipLevel)

			if tt.upgraded {
				assert.Equal(t, model.VipBonusFor(tt.expectedLevel), result.Bonus)
				assert.Equal(t, 100000-tt.spend+result.Bonus, updated.Balance)
				assert.NotNil(t, updated.VipUpgradeDate)

				txs := env.transactions(t, account.ID)
				assert.Equal(t, model.TagVipBonus, txs[0].Tag)
				assert.Len(t, env.events.named(events.VipUpgrade), 1)
			} else {
				assert.Equal(t, 100000-tt.spend, updated.Balance)
			}
		})
	}
}

func TestAddMoney_UpToMaxBalance(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 100)

	trans, err := env.services.Accounts.AddMoney(env.ctx, account.ID, math.MaxInt64-100, model.TagDeposit, nil)
	require.NoError(t, err)
	assert.Equal(t, trans.BalanceBefore+trans.Amount, trans.BalanceAfter)
	assert.Equal(t, int64(math.MaxInt64), env.balance(t, account.ID))
}

func TestCheckVipUpgrade_SpendOutlivesTransactionLog(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 60000)

	for i := 0; i < 20; i++ {
		_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 2500, model.TagBet, nil)
		require.NoError(t, err)
	}
	// push every bet debit out of the capped log
	for i := 0; i < model.MaxHistoryEntries; i++ {
		_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 1, model.TagDeposit, nil)
		require.NoError(t, err)
	}
	for _, tx := range env.transactions(t, account.ID) {
		require.NotEqual(t, model.TagBet, tx.Tag)
	}

	env.sched.Advance(env.ctx, 31*24*time.Hour)

	result, err := env.services.Accounts.CheckVipUpgrade(env.ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, result.Upgraded)
	assert.Equal(t, 5, result.Level)

	updated, err := env.services.Accounts.GetAccount(env.ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), updated.LifetimeSpend)
}

func TestLifetimeSpend_CountsOnlyBetDebits(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 1000)

	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 300, model.TagWithdrawal, nil)
	require.NoError(t, err)
	_, err = env.services.Bets.PlaceBet(env.ctx, account.ID, miniBet(4, 100, 1))
	require.NoError(t, err)

	updated, err := env.services.Accounts.GetAccount(env.ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(125), updated.LifetimeSpend)
}

func TestCheckVipUpgrade_BonusGrantedOnce(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 10000)
	_, err := env.services.Accounts.DeductMoney(env.ctx, account.ID, 5000, model.TagBet, nil)
	require.NoError(t, err)
	env.sched.Advance(env.ctx, 8*24*time.Hour)

	first, err := env.services.Accounts.CheckVipUpgrade(env.ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, first.Upgraded)

	second, err := env.services.Accounts.CheckVipUpgrade(env.ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, second.Upgraded)
	assert.Equal(t, 2, second.Level)

	assert.Equal(t, int64(5200), env.balance(t, account.ID))
}

func TestCheckDailyBonus(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 0)

	first, err := env.services.Accounts.CheckDailyBonus(env.ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, first.Granted)
	assert.Equal(t, int64(25), first.Amount)
	assert.Equal(t, 1, first.LoginStreak)

	again, err := env.services.Accounts.CheckDailyBonus(env.ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, again.Granted)
	assert.Equal(t, int64(25), env.balance(t, account.ID))

	env.sched.Advance(env.ctx, 24*time.Hour)

	next, err := env.services.Accounts.CheckDailyBonus(env.ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, next.Granted)
	assert.Equal(t, 2, next.LoginStreak)
	assert.Equal(t, int64(50), env.balance(t, account.ID))
}

func TestApplyReferralBonus(t *testing.T) {
	env := newTestEnv(t)
	account := env.openAccount(t, 0)

	_, err := env.services.Accounts.ApplyReferralBonus(env.ctx, account.ID, "abc")
	assert.ErrorIs(t, err, model.ErrValidation)

	trans, err := env.services.Accounts.ApplyReferralBonus(env.ctx, account.ID, "FRIEND2024")
	require.NoError(t, err)
	assert.Equal(t, int64(model.ReferralBonus), trans.Amount)
	assert.Equal(t, model.TagReferralBonus, trans.Tag)
	assert.Equal(t, int64(model.ReferralBonus), env.balance(t, account.ID))

	_, err = env.services.Accounts.ApplyReferralBonus(env.ctx, account.ID, "FRIEND2024")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, int64(model.ReferralBonus), env.balance(t, account.ID))
}

func TestAddMoney_RetriesPersistenceFailureOnce(t *testing.T) {
	store := &flakyStore{Store: memory.New()}
	env := newTestEnvWithStore(t, store)
	account := env.openAccount(t, 100)

	store.failNext(1)
	_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 50, model.TagDeposit, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, store.attempts)
	assert.Equal(t, int64(150), env.balance(t, account.ID))
	assert.Len(t, env.transactions(t, account.ID), 2)
}

func TestAddMoney_PersistenceFailureLeavesStateUnchanged(t *testing.T) {
	store := &flakyStore{Store: memory.New()}
	env := newTestEnvWithStore(t, store)
	account := env.openAccount(t, 100)

	store.failNext(2)
	_, err := env.services.Accounts.AddMoney(env.ctx, account.ID, 50, model.TagDeposit, nil)
	assert.ErrorIs(t, err, model.ErrPersistence)

	assert.Equal(t, 2, store.attempts)
	assert.Equal(t, int64(100), env.balance(t, account.ID))
	assert.Len(t, env.transactions(t, account.ID), 1)
	assert.Empty(t, env.events.named(events.BalanceUpdate))
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	noopTx := func(repository.Executor) error { return nil }

	t.Run("retries once on persistence error", func(t *testing.T) {
		db := mocks.NewDBManager(t)
		db.On("WithTransaction", ctx, mock.Anything).
			Return(fmt.Errorf("%w: connection reset", model.ErrPersistence)).Once()
		db.On("WithTransaction", ctx, mock.Anything).Return(nil).Once()

		err := runInTransaction(ctx, db, zerolog.Nop(), noopTx)
		assert.NoError(t, err)
	})

	t.Run("does not retry domain errors", func(t *testing.T) {
		db := mocks.NewDBManager(t)
		db.On("WithTransaction", ctx, mock.Anything).Return(model.ErrInsufficientFunds).Once()

		err := runInTransaction(ctx, db, zerolog.Nop(), noopTx)
		assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	})

	t.Run("gives up after second failure", func(t *testing.T) {
		db := mocks.NewDBManager(t)
		db.On("WithTransaction", ctx, mock.Anything).
			Return(fmt.Errorf("%w: connection reset", model.ErrPersistence)).Twice()

		err := runInTransaction(ctx, db, zerolog.Nop(), noopTx)
		assert.ErrorIs(t, err, model.ErrPersistence)
	})
}
