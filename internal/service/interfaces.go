package service

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"time"
)

// AccountService owns balances, the transaction log and account perks
type AccountService interface {
	OpenAccount(ctx context.Context, name string, initialBalance int64) (*model.Account, error)
	GetAccount(ctx context.Context, accountID string) (*model.Account, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)

	// AddMoney and DeductMoney are the only balance mutators. Passing tx joins
	// the caller's transaction; the caller then publishes its own events.
	AddMoney(ctx context.Context, accountID string, amount int64, source model.TransactionTag, metadata map[string]string, tx ...repository.Executor) (*model.Transaction, error)
	DeductMoney(ctx context.Context, accountID string, amount int64, reason model.TransactionTag, metadata map[string]string, tx ...repository.Executor) (*model.Transaction, error)

	GetTransactions(ctx context.Context, accountID string, filter model.TransactionFilter) ([]*model.Transaction, error)
	GetBalanceStatistics(ctx context.Context, accountID string) (*model.BalanceStatistics, error)
	CheckVipUpgrade(ctx context.Context, accountID string) (*model.VipUpgrade, error)
	GetVipBenefits(level int) model.VipBenefits
	CheckDailyBonus(ctx context.Context, accountID string) (*model.DailyBonus, error)
	ApplyReferralBonus(ctx context.Context, accountID, code string) (*model.Transaction, error)
}

// BetService validates, reserves and records bets
type BetService interface {
	PlaceBet(ctx context.Context, accountID string, req *model.BetRequest) (*model.Bet, error)

	// PlaceAutoBet places req like PlaceBet and runs record in the same
	// transaction; an error from record rolls the bet back
	PlaceAutoBet(ctx context.Context, accountID string, req *model.BetRequest, record func(tx repository.Executor, bet *model.Bet) error) (*model.Bet, error)

	// GetBetsForAccount returns one page of matching bets and the number of matches
	GetBetsForAccount(ctx context.Context, accountID string, filter model.BetFilter) ([]*model.Bet, int, error)
	GetActiveBets(ctx context.Context, accountID string) ([]*model.Bet, error)
	GetBettingStats(ctx context.Context, accountID string) (*model.BettingStats, error)
	GetRecommendedDigits(ctx context.Context) ([]int, error)
	GetBetSuggestion(ctx context.Context, accountID string) (*model.BetSuggestion, error)

	// RecoverPendingMiniBets resolves stale Mini bets and reschedules the rest
	RecoverPendingMiniBets(ctx context.Context) (int, error)
}

// DrawService decides outcomes and pays winners
type DrawService interface {
	ResolveBet(ctx context.Context, accountID, betID string, winningDigit int) (*model.Bet, error)
	SimulateDraw(ctx context.Context, kind model.DrawKind) (*model.DrawResult, error)
	ScheduleResolution(bet *model.Bet, delay time.Duration)
	GetRecentDrawResults(ctx context.Context, limit int) ([]*model.DrawResult, error)
	NextDrawTime(kind model.DrawKind) (time.Time, error)
}

// AutoBetService drives the self-rescheduling bet loop
type AutoBetService interface {
	StartAutoBet(ctx context.Context, accountID string, req *model.AutoBetRequest) (*model.AutoBetConfig, error)
	StopAutoBet(ctx context.Context, accountID string) (*model.AutoBetConfig, error)
	GetAutoBet(ctx context.Context, accountID string) (*model.AutoBetConfig, error)

	// Step runs one iteration of the run identified by runID; stale runs are ignored
	Step(ctx context.Context, accountID, runID string) error
	ResumeAutoBets(ctx context.Context) (int, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context, accountID string) (model.Settings, error)
	UpdateSettings(ctx context.Context, accountID string, patch model.SettingsPatch) (model.Settings, error)
}
