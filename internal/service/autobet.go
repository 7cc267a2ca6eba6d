package service

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/config"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/scheduler"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAutoBetStake      = 25
	defaultAutoBetMultiplier = 1
	defaultAutoBetMaxBets    = 10

	StopMaxBets      = "max bets reached"
	StopOnWin        = "stopped on win"
	StopOnLoss       = "stopped on loss"
	StopInsufficient = "insufficient balance"
	StopByUser       = "stopped by user"
)

type AutoBetServiceImpl struct {
	repos     *repository.Repositories
	accounts  AccountService
	bets      BetService
	settings  SettingsService
	scheduler scheduler.Scheduler
	clock     scheduler.Clock
	random    DigitSource
	publisher events.Publisher
	game      config.GameConfig
	logger    zerolog.Logger
}

func NewAutoBetService(
	repos *repository.Repositories,
	accounts AccountService,
	bets BetService,
	settings SettingsService,
	sched scheduler.Scheduler,
	clock scheduler.Clock,
	random DigitSource,
	publisher events.Publisher,
	game config.GameConfig,
	logger zerolog.Logger,
) AutoBetService {
	return &AutoBetServiceImpl{
		repos:     repos,
		accounts:  accounts,
		bets:      bets,
		settings:  settings,
		scheduler: sched,
		clock:     clock,
		random:    random,
		publisher: publisher,
		game:      game,
		logger:    logger,
	}
}

func (s *AutoBetServiceImpl) StartAutoBet(ctx context.Context, accountID string, req *model.AutoBetRequest) (*model.AutoBetConfig, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	if req == nil {
		req = &model.AutoBetRequest{}
	}
	if _, err := s.accounts.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !settings.AutoPlay {
		return nil, model.ErrAutoPlayDisabled
	}

	now := s.clock.Now()
	cfg := &model.AutoBetConfig{
		AccountID:  accountID,
		DrawKind:   req.DrawKind,
		Stake:      req.Stake,
		Multiplier: req.Multiplier,
		StopOnWin:  req.StopOnWin,
		StopOnLoss: req.StopOnLoss,
		MaxBets:    req.MaxBets,
		Enabled:    true,
		RunID:      uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cfg.DrawKind == "" {
		cfg.DrawKind = model.DrawMini
	}
	if cfg.Stake == 0 {
		cfg.Stake = defaultAutoBetStake
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = defaultAutoBetMultiplier
	}
	if cfg.MaxBets <= 0 {
		cfg.MaxBets = defaultAutoBetMaxBets
	}
	if req.SelectedDigit != nil {
		cfg.SelectedDigit = *req.SelectedDigit
	} else {
		cfg.SelectedDigit = s.random.IntN(10)
	}

	if _, _, _, err := validateBet(betRequestFor(cfg)); err != nil {
		return nil, err
	}

	if err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		return s.repos.AutoBets.PutAutoBetConfig(ctx, cfg, tx)
	}); err != nil {
		return nil, fmt.Errorf("put auto-bet config: %w", err)
	}

	s.logger.Info().
		Str("account_id", accountID).
		Str("run_id", cfg.RunID).
		Str("draw_kind", cfg.DrawKind.String()).
		Int("max_bets", cfg.MaxBets).
		Msg("auto-bet started")

	// A failed first step is logged and retried by Step itself
	_ = s.Step(ctx, accountID, cfg.RunID)
	return s.GetAutoBet(ctx, accountID)
}

func betRequestFor(cfg *model.AutoBetConfig) *model.BetRequest {
	return &model.BetRequest{
		DrawKind:      cfg.DrawKind,
		SelectedDigit: cfg.SelectedDigit,
		Stake:         cfg.Stake,
		Multiplier:    cfg.Multiplier,
		IsAutoBet:     true,
	}
}

// Step places one auto bet or stops the run. Only the run that is currently
// stored acts; steps left over from an earlier run are dropped. A step that
// fails leaves the run enabled and is retried after the run's interval.
func (s *AutoBetServiceImpl) Step(ctx context.Context, accountID, runID string) error {
	kind, err := s.step(ctx, accountID, runID)
	if err != nil {
		delay := s.game.AutoBetResumeDelay
		if kind != "" {
			delay = s.intervalFor(kind)
		}
		s.logger.Error().
			Err(err).
			Str("account_id", accountID).
			Str("run_id", runID).
			Dur("retry_in", delay).
			Msg("auto-bet step failed")
		s.scheduleStep(accountID, runID, delay)
	}
	return err
}

// errRunEnded rolls back a bet whose run was stopped or replaced meanwhile
var errRunEnded = errors.New("auto-bet run ended")

func (s *AutoBetServiceImpl) step(ctx context.Context, accountID, runID string) (model.DrawKind, error) {
	cfg, err := s.repos.AutoBets.GetAutoBetConfig(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("get auto-bet config: %w", err)
	}
	if cfg == nil || !cfg.Enabled || cfg.RunID != runID {
		return "", nil
	}
	kind := cfg.DrawKind

	if cfg.BetCount >= cfg.MaxBets {
		return kind, s.stop(ctx, accountID, runID, StopMaxBets)
	}

	if cfg.LastBetID != "" && (cfg.StopOnWin || cfg.StopOnLoss) {
		bets, err := s.repos.Bets.GetBets(ctx, accountID)
		if err != nil {
			return kind, fmt.Errorf("get bets: %w", err)
		}
		for _, b := range bets {
			if b.ID != cfg.LastBetID {
				continue
			}
			if !b.Status.Resolved() {
				break
			}
			if b.Status == model.BetWon && cfg.StopOnWin {
				return kind, s.stop(ctx, accountID, runID, StopOnWin)
			}
			if b.Status == model.BetLost && cfg.StopOnLoss {
				return kind, s.stop(ctx, accountID, runID, StopOnLoss)
			}
			break
		}
	}

	req := betRequestFor(cfg)
	_, totalCost, _, err := validateBet(req)
	if err != nil {
		return kind, s.stop(ctx, accountID, runID, err.Error())
	}
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		return kind, fmt.Errorf("get balance: %w", err)
	}
	if balance < totalCost {
		return kind, s.stop(ctx, accountID, runID, StopInsufficient)
	}

	// The bet and its count in the run commit together
	_, err = s.bets.PlaceAutoBet(ctx, accountID, req, func(tx repository.Executor, bet *model.Bet) error {
		current, err := s.repos.AutoBets.GetAutoBetConfig(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get auto-bet config: %w", err)
		}
		if current == nil || !current.Enabled || current.RunID != runID {
			return errRunEnded
		}
		current.BetCount++
		current.LastBetID = bet.ID
		current.UpdatedAt = s.clock.Now()
		if err := s.repos.AutoBets.PutAutoBetConfig(ctx, current, tx); err != nil {
			return fmt.Errorf("put auto-bet config: %w", err)
		}
		return nil
	})
	switch {
	case errors.Is(err, errRunEnded):
		return kind, nil
	case errors.Is(err, model.ErrPersistence):
		return kind, err
	case err != nil:
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("auto bet failed")
		return kind, s.stop(ctx, accountID, runID, err.Error())
	}

	s.scheduleStep(accountID, runID, s.intervalFor(kind))
	return kind, nil
}

func (s *AutoBetServiceImpl) intervalFor(kind model.DrawKind) time.Duration {
	if kind == model.DrawMini {
		return s.game.AutoBetMiniInterval
	}
	return s.game.AutoBetInterval
}

func (s *AutoBetServiceImpl) scheduleStep(accountID, runID string, delay time.Duration) {
	s.scheduler.Schedule("autobet:"+accountID, delay, func(ctx context.Context) error {
		return s.Step(ctx, accountID, runID)
	})
}

func (s *AutoBetServiceImpl) stop(ctx context.Context, accountID, runID, reason string) error {
	var stopped *model.AutoBetConfig
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		stopped = nil
		cfg, err := s.repos.AutoBets.GetAutoBetConfig(ctx, accountID, tx)
		if err != nil {
			return err
		}
		if cfg == nil || !cfg.Enabled || (runID != "" && cfg.RunID != runID) {
			return nil
		}
		cfg.Enabled = false
		cfg.StopReason = reason
		cfg.UpdatedAt = s.clock.Now()
		stopped = cfg
		return s.repos.AutoBets.PutAutoBetConfig(ctx, cfg, tx)
	})
	if err != nil {
		return fmt.Errorf("stop auto-bet: %w", err)
	}
	if stopped == nil {
		return nil
	}

	s.logger.Info().
		Str("account_id", accountID).
		Str("run_id", stopped.RunID).
		Str("reason", reason).
		Int("bet_count", stopped.BetCount).
		Msg("auto-bet stopped")

	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.AutoBetStopped,
		AccountID: accountID,
		Timestamp: stopped.UpdatedAt,
		Data:      map[string]any{"reason": reason, "bet_count": stopped.BetCount},
	})
	return nil
}

func (s *AutoBetServiceImpl) StopAutoBet(ctx context.Context, accountID string) (*model.AutoBetConfig, error) {
	cfg, err := s.GetAutoBet(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: no auto-bet configured", model.ErrValidation)
	}
	if err := s.stop(ctx, accountID, "", StopByUser); err != nil {
		return nil, err
	}
	return s.GetAutoBet(ctx, accountID)
}

// GetAutoBet returns nil when the account never configured auto-bet
func (s *AutoBetServiceImpl) GetAutoBet(ctx context.Context, accountID string) (*model.AutoBetConfig, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	cfg, err := s.repos.AutoBets.GetAutoBetConfig(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get auto-bet config: %w", err)
	}
	return cfg, nil
}

// ResumeAutoBets schedules the next step of every enabled run after the resume delay
func (s *AutoBetServiceImpl) ResumeAutoBets(ctx context.Context) (int, error) {
	ids, err := s.repos.Accounts.ListAccountIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list accounts: %w", err)
	}

	resumed := 0
	var errs []error
	for _, accountID := range ids {
		cfg, err := s.repos.AutoBets.GetAutoBetConfig(ctx, accountID)
		if err != nil {
			errs = append(errs, fmt.Errorf("get auto-bet config for %s: %w", accountID, err))
			continue
		}
		if cfg == nil || !cfg.Enabled {
			continue
		}
		s.scheduleStep(accountID, cfg.RunID, s.game.AutoBetResumeDelay)
		resumed++
	}

	if resumed > 0 {
		s.logger.Info().Int("count", resumed).Msg("auto-bet runs resumed")
	}
	return resumed, errors.Join(errs...)
}
