package service

import (
	"context"
	"fmt"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/scheduler"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultTransactionLimit = 50

type AccountServiceImpl struct {
	repos     *repository.Repositories
	clock     scheduler.Clock
	publisher events.Publisher
	logger    zerolog.Logger
}

func NewAccountService(
	repos *repository.Repositories,
	clock scheduler.Clock,
	publisher events.Publisher,
	logger zerolog.Logger,
) AccountService {
	return &AccountServiceImpl{
		repos:     repos,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *AccountServiceImpl) OpenAccount(ctx context.Context, name string, initialBalance int64) (*model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: initial balance must not be negative", model.ErrValidation)
	}

	var account *model.Account
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		now := s.clock.Now()
		account = &model.Account{
			ID:        uuid.NewString(),
			Name:      name,
			VipLevel:  model.MinVipLevel,
			JoinDate:  now,
			CreatedAt: now,
		}

		if err := s.repos.Accounts.RegisterAccountID(ctx, account.ID, tx); err != nil {
			return fmt.Errorf("register account: %w", err)
		}
		if err := s.repos.Settings.PutSettings(ctx, account.ID, model.DefaultSettings(), tx); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		if initialBalance > 0 {
			if _, err := s.applyBalanceChange(ctx, account, model.TransactionCredit, initialBalance, model.TagSignup, nil, tx); err != nil {
				return err
			}
			return nil
		}
		if err := s.repos.Accounts.PutAccount(ctx, account, tx); err != nil {
			return fmt.Errorf("put account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Int64("balance", account.Balance).Msg("account opened")
	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.AccountOpened,
		AccountID: account.ID,
		Timestamp: account.CreatedAt,
		Data:      map[string]any{"name": account.Name, "balance": account.Balance},
	})
	return account, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, accountID string) (*model.Account, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	account, err := s.repos.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, accountID string) (int64, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *AccountServiceImpl) AddMoney(ctx context.Context, accountID string, amount int64, source model.TransactionTag, metadata map[string]string, tx ...repository.Executor) (*model.Transaction, error) {
	if !source.IsCredit() {
		return nil, fmt.Errorf("%w: %q is not a credit source", model.ErrValidation, source)
	}
	return s.changeBalance(ctx, accountID, model.TransactionCredit, amount, source, metadata, joinedTx(tx))
}

func (s *AccountServiceImpl) DeductMoney(ctx context.Context, accountID string, amount int64, reason model.TransactionTag, metadata map[string]string, tx ...repository.Executor) (*model.Transaction, error) {
	if !reason.IsDebit() {
		return nil, fmt.Errorf("%w: %q is not a debit reason", model.ErrValidation, reason)
	}
	return s.changeBalance(ctx, accountID, model.TransactionDebit, amount, reason, metadata, joinedTx(tx))
}

func (s *AccountServiceImpl) changeBalance(ctx context.Context, accountID string, kind model.TransactionKind, amount int64, tag model.TransactionTag, metadata map[string]string, tx repository.Executor) (*model.Transaction, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}

	apply := func(tx repository.Executor) (*model.Transaction, error) {
		account, err := s.repos.Accounts.GetAccount(ctx, accountID, tx)
		if err != nil {
			return nil, fmt.Errorf("get account: %w", err)
		}
		return s.applyBalanceChange(ctx, account, kind, amount, tag, metadata, tx)
	}

	// joined transaction: the owner commits and publishes
	if tx != nil {
		return apply(tx)
	}

	var trans *model.Transaction
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		var err error
		trans, err = apply(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishBalance(ctx, trans)
	return trans, nil
}

// applyBalanceChange mutates the loaded account, persists it and prepends the
// matching transaction to the log
func (s *AccountServiceImpl) applyBalanceChange(ctx context.Context, account *model.Account, kind model.TransactionKind, amount int64, tag model.TransactionTag, metadata map[string]string, tx repository.Executor) (*model.Transaction, error) {
	before := account.Balance
	var after int64
	switch kind {
	case model.TransactionDebit:
		if before < amount {
			return nil, fmt.Errorf("%w: balance %d, required %d", model.ErrInsufficientFunds, before, amount)
		}
		after = before - amount
		if tag == model.TagBet {
			account.LifetimeSpend = addCapped(account.LifetimeSpend, amount)
		}
	default:
		if amount > math.MaxInt64-before {
			return nil, fmt.Errorf("%w: credit of %d overflows balance %d", model.ErrValidation, amount, before)
		}
		after = before + amount
	}

	now := s.clock.Now()
	setBalance(account, after, now)
	if err := s.repos.Accounts.PutAccount(ctx, account, tx); err != nil {
		return nil, fmt.Errorf("put account: %w", err)
	}

	trans := &model.Transaction{
		ID:            "txn_" + uuid.NewString(),
		AccountID:     account.ID,
		Kind:          kind,
		Amount:        amount,
		Tag:           tag,
		BalanceBefore: before,
		BalanceAfter:  account.Balance,
		Timestamp:     now,
		Metadata:      metadata,
	}

	log, err := s.repos.Transactions.GetTransactions(ctx, account.ID, tx)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	log = append([]*model.Transaction{trans}, log...)
	if err := s.repos.Transactions.PutTransactions(ctx, account.ID, log, tx); err != nil {
		return nil, fmt.Errorf("put transactions: %w", err)
	}

	s.logger.Debug().
		Str("account_id", account.ID).
		Str("kind", string(kind)).
		Str("tag", string(tag)).
		Int64("amount", amount).
		Int64("balance_before", before).
		Int64("balance_after", account.Balance).
		Msg("balance updated")

	return trans, nil
}

// addCapped saturates at math.MaxInt64
func addCapped(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// setBalance is the single place a balance is written
func setBalance(account *model.Account, balance int64, at time.Time) {
	if balance < 0 {
		balance = 0
	}
	account.Balance = balance
	account.LastBalanceUpdate = &at
}

func (s *AccountServiceImpl) publishBalance(ctx context.Context, trans *model.Transaction) {
	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.BalanceUpdate,
		AccountID: trans.AccountID,
		Timestamp: trans.Timestamp,
		Data: map[string]any{
			"transaction_id": trans.ID,
			"kind":           trans.Kind,
			"tag":            trans.Tag,
			"amount":         trans.Amount,
			"balance":        trans.BalanceAfter,
		},
	})
}

func (s *AccountServiceImpl) GetTransactions(ctx context.Context, accountID string, filter model.TransactionFilter) ([]*model.Transaction, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	log, err := s.repos.Transactions.GetTransactions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	out := make([]*model.Transaction, 0, min(limit, len(log)))
	for _, t := range log {
		if len(out) == limit {
			break
		}
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *AccountServiceImpl) GetBalanceStatistics(ctx context.Context, accountID string) (*model.BalanceStatistics, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	log, err := s.repos.Transactions.GetTransactions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	stats := &model.BalanceStatistics{TransactionCount: len(log)}
	for _, t := range log {
		switch t.Tag {
		case model.TagDeposit:
			stats.TotalDeposits += t.Amount
		case model.TagWithdrawal:
			stats.TotalWithdrawals += t.Amount
		case model.TagWin:
			stats.TotalWinnings += t.Amount
		case model.TagBet:
			stats.TotalBets += t.Amount
		}
	}
	stats.NetProfit = stats.TotalWinnings - stats.TotalBets
	return stats, nil
}

func (s *AccountServiceImpl) CheckVipUpgrade(ctx context.Context, accountID string) (*model.VipUpgrade, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}

	var result *model.VipUpgrade
	var bonus *model.Transaction
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		bonus = nil
		account, err := s.repos.Accounts.GetAccount(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		now := s.clock.Now()
		level := model.VipLevelFor(account.LifetimeSpend, model.AccountAgeDays(account.JoinDate, now))
		if level <= account.VipLevel {
			result = &model.VipUpgrade{Level: account.VipLevel}
			return nil
		}

		account.VipLevel = level
		account.VipUpgradeDate = &now
		amount := model.VipBonusFor(level)
		bonus, err = s.applyBalanceChange(ctx, account, model.TransactionCredit, amount, model.TagVipBonus,
			map[string]string{"level": strconv.Itoa(level)}, tx)
		if err != nil {
			return err
		}
		result = &model.VipUpgrade{Upgraded: true, Level: level, Bonus: amount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Upgraded {
		s.logger.Info().Str("account_id", accountID).Int("vip_level", result.Level).Msg("vip level upgraded")
		publish(ctx, s.publisher, s.logger, events.Event{
			Name:      events.VipUpgrade,
			AccountID: accountID,
			Timestamp: bonus.Timestamp,
			Data:      map[string]any{"level": result.Level, "bonus": result.Bonus},
		})
		s.publishBalance(ctx, bonus)
	}
	return result, nil
}

func (s *AccountServiceImpl) GetVipBenefits(level int) model.VipBenefits {
	return model.VipBenefitsFor(level)
}

func (s *AccountServiceImpl) CheckDailyBonus(ctx context.Context, accountID string) (*model.DailyBonus, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}

	var result *model.DailyBonus
	var bonus *model.Transaction
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		bonus = nil
		account, err := s.repos.Accounts.GetAccount(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		today := s.clock.Now().Format(time.DateOnly)
		if account.LastDailyBonus == today {
			result = &model.DailyBonus{LoginStreak: account.LoginStreak}
			return nil
		}

		account.LastDailyBonus = today
		account.LoginStreak++
		amount := model.VipBenefitsFor(account.VipLevel).DailyBonus
		bonus, err = s.applyBalanceChange(ctx, account, model.TransactionCredit, amount, model.TagDailyBonus,
			map[string]string{"day": today}, tx)
		if err != nil {
			return err
		}
		result = &model.DailyBonus{Granted: true, Amount: amount, LoginStreak: account.LoginStreak}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if bonus != nil {
		s.publishBalance(ctx, bonus)
	}
	return result, nil
}

func (s *AccountServiceImpl) ApplyReferralBonus(ctx context.Context, accountID, code string) (*model.Transaction, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	code = strings.TrimSpace(code)
	if len(code) < model.MinReferralLength {
		return nil, fmt.Errorf("%w: referral code must have at least %d characters", model.ErrValidation, model.MinReferralLength)
	}

	var trans *model.Transaction
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		account, err := s.repos.Accounts.GetAccount(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		if account.ReferralApplied {
			return fmt.Errorf("%w: referral bonus already applied", model.ErrValidation)
		}

		account.ReferralApplied = true
		account.ReferredBy = code
		trans, err = s.applyBalanceChange(ctx, account, model.TransactionCredit, model.ReferralBonus, model.TagReferralBonus,
			map[string]string{"code": code}, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishBalance(ctx, trans)
	return trans, nil
}
