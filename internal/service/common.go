package service

import (
	"context"
	"errors"
	"lottery-engine/internal/config"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/scheduler"
	"math/rand"

	"github.com/rs/zerolog"
)

// DigitSource supplies draw randomness
type DigitSource interface {
	IntN(n int) int
	Float64() float64
}

type mathRandSource struct{}

func (mathRandSource) IntN(n int) int   { return rand.Intn(n) }
func (mathRandSource) Float64() float64 { return rand.Float64() }

func NewRandomSource() DigitSource {
	return mathRandSource{}
}

// Dependencies shared by every service
type Dependencies struct {
	Repos     *repository.Repositories
	Scheduler scheduler.Scheduler
	Clock     scheduler.Clock
	Publisher events.Publisher
	Random    DigitSource
	Game      config.GameConfig
	Logger    zerolog.Logger
}

type Services struct {
	Accounts AccountService
	Bets     BetService
	Draws    DrawService
	AutoBets AutoBetService
	Settings SettingsService
}

func NewServices(d Dependencies) *Services {
	if d.Random == nil {
		d.Random = NewRandomSource()
	}
	if d.Clock == nil {
		d.Clock = scheduler.SystemClock{}
	}
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}

	accounts := NewAccountService(d.Repos, d.Clock, d.Publisher, d.Logger)
	settings := NewSettingsService(d.Repos, d.Clock, d.Publisher, d.Logger)
	draws := NewDrawService(d.Repos, accounts, d.Scheduler, d.Clock, d.Random, d.Publisher, d.Logger)
	bets := NewBetService(d.Repos, accounts, draws, d.Clock, d.Random, d.Publisher, d.Game, d.Logger)
	autoBets := NewAutoBetService(d.Repos, accounts, bets, settings, d.Scheduler, d.Clock, d.Random, d.Publisher, d.Game, d.Logger)

	return &Services{
		Accounts: accounts,
		Bets:     bets,
		Draws:    draws,
		AutoBets: autoBets,
		Settings: settings,
	}
}

// runInTransaction retries fn once when the store reports a persistence failure
func runInTransaction(ctx context.Context, db repository.DBManager, logger zerolog.Logger, fn func(tx repository.Executor) error) error {
	err := db.WithTransaction(ctx, fn)
	if errors.Is(err, model.ErrPersistence) && ctx.Err() == nil {
		logger.Warn().Err(err).Msg("transaction failed, retrying once")
		err = db.WithTransaction(ctx, fn)
	}
	return err
}

func publish(ctx context.Context, p events.Publisher, logger zerolog.Logger, e events.Event) {
	if err := p.Publish(ctx, e); err != nil {
		logger.Warn().Err(err).Str("event", e.Name).Str("account_id", e.AccountID).Msg("failed to publish event")
	}
}

func joinedTx(tx []repository.Executor) repository.Executor {
	if len(tx) > 0 {
		return tx[0]
	}
	return nil
}
