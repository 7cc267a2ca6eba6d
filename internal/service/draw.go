package service

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/scheduler"
	"time"

	"github.com/rs/zerolog"
)

type DrawServiceImpl struct {
	repos     *repository.Repositories
	accounts  AccountService
	scheduler scheduler.Scheduler
	clock     scheduler.Clock
	random    DigitSource
	publisher events.Publisher
	logger    zerolog.Logger
}

func NewDrawService(
	repos *repository.Repositories,
	accounts AccountService,
	sched scheduler.Scheduler,
	clock scheduler.Clock,
	random DigitSource,
	publisher events.Publisher,
	logger zerolog.Logger,
) DrawService {
	return &DrawServiceImpl{
		repos:     repos,
		accounts:  accounts,
		scheduler: sched,
		clock:     clock,
		random:    random,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *DrawServiceImpl) ResolveBet(ctx context.Context, accountID, betID string, winningDigit int) (*model.Bet, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	if !model.ValidDigit(winningDigit) {
		return nil, fmt.Errorf("%w: winning digit %d out of range", model.ErrValidation, winningDigit)
	}

	var resolved *model.Bet
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		bets, err := s.repos.Bets.GetBets(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get bets: %w", err)
		}

		var bet *model.Bet
		for _, b := range bets {
			if b.ID == betID {
				bet = b
				break
			}
		}
		if bet == nil {
			return fmt.Errorf("%w: %s", model.ErrBetNotFound, betID)
		}

		if err := s.settle(ctx, accountID, bet, winningDigit, tx); err != nil {
			return err
		}
		if err := s.repos.Bets.PutBets(ctx, accountID, bets, tx); err != nil {
			return fmt.Errorf("put bets: %w", err)
		}
		resolved = bet
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishResult(ctx, resolved)
	return resolved, nil
}

// settle resolves one bet in place and credits the payout inside tx
func (s *DrawServiceImpl) settle(ctx context.Context, accountID string, bet *model.Bet, winningDigit int, tx repository.Executor) error {
	if err := bet.Settle(winningDigit, s.clock.Now()); err != nil {
		return fmt.Errorf("bet %s: %w", bet.ID, err)
	}
	if bet.Payout > 0 {
		_, err := s.accounts.AddMoney(ctx, accountID, bet.Payout, model.TagWin,
			map[string]string{"bet_id": bet.ID, "draw_kind": bet.DrawKind.String()}, tx)
		if err != nil {
			return fmt.Errorf("credit payout: %w", err)
		}
	}
	return nil
}

func (s *DrawServiceImpl) publishResult(ctx context.Context, bet *model.Bet) {
	s.logger.Info().
		Str("account_id", bet.AccountID).
		Str("bet_id", bet.ID).
		Str("draw_kind", bet.DrawKind.String()).
		Str("status", string(bet.Status)).
		Int("winning_digit", *bet.WinningDigit).
		Int64("payout", bet.Payout).
		Msg("bet resolved")

	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.BetResult,
		AccountID: bet.AccountID,
		Timestamp: *bet.ResolvedAt,
		Data: map[string]any{
			"bet_id":        bet.ID,
			"draw_kind":     bet.DrawKind,
			"status":        bet.Status,
			"selected":      bet.SelectedDigit,
			"winning_digit": *bet.WinningDigit,
			"payout":        bet.Payout,
			"is_auto_bet":   bet.IsAutoBet,
		},
	})
}

// SimulateDraw draws one digit for kind and resolves every pending bet of
// that kind, one account transaction at a time
func (s *DrawServiceImpl) SimulateDraw(ctx context.Context, kind model.DrawKind) (*model.DrawResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDrawKind, kind)
	}

	ids, err := s.repos.Accounts.ListAccountIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var candidates []string
	for _, id := range ids {
		bets, err := s.repos.Bets.GetBets(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get bets for %s: %w", id, err)
		}
		if hasPending(bets, kind) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrNoPendingBets, kind)
	}

	digit := s.random.IntN(10)
	result := &model.DrawResult{DrawKind: kind, WinningDigit: digit}

	for _, accountID := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var settled []*model.Bet
		err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
			settled = nil
			bets, err := s.repos.Bets.GetBets(ctx, accountID, tx)
			if err != nil {
				return fmt.Errorf("get bets: %w", err)
			}
			for _, b := range bets {
				// resolved meanwhile by its own schedule
				if b.DrawKind != kind || b.Status != model.BetPending {
					continue
				}
				if err := s.settle(ctx, accountID, b, digit, tx); err != nil {
					return err
				}
				settled = append(settled, b)
			}
			if len(settled) == 0 {
				return nil
			}
			return s.repos.Bets.PutBets(ctx, accountID, bets, tx)
		})
		if err != nil {
			s.logger.Error().Err(err).Str("account_id", accountID).Str("draw_kind", kind.String()).Msg("failed to resolve draw for account")
			continue
		}

		for _, b := range settled {
			result.ResolvedBets++
			if b.Status == model.BetWon {
				result.Winners++
				result.TotalPayout += b.Payout
			}
			s.publishResult(ctx, b)
		}
	}

	result.DrawnAt = s.clock.Now()
	err = runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		recent, err := s.repos.DrawResults.GetDrawResults(ctx, tx)
		if err != nil {
			return fmt.Errorf("get draw results: %w", err)
		}
		return s.repos.DrawResults.PutDrawResults(ctx, append([]*model.DrawResult{result}, recent...), tx)
	})
	if err != nil {
		return nil, fmt.Errorf("record draw result: %w", err)
	}

	s.logger.Info().
		Str("draw_kind", kind.String()).
		Int("winning_digit", digit).
		Int("resolved_bets", result.ResolvedBets).
		Int("winners", result.Winners).
		Int64("total_payout", result.TotalPayout).
		Msg("draw completed")

	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.DrawResult,
		Timestamp: result.DrawnAt,
		Data: map[string]any{
			"draw_kind":     kind,
			"winning_digit": digit,
			"resolved_bets": result.ResolvedBets,
			"winners":       result.Winners,
			"total_payout":  result.TotalPayout,
		},
	})
	return result, nil
}

func hasPending(bets []*model.Bet, kind model.DrawKind) bool {
	for _, b := range bets {
		if b.DrawKind == kind && b.Status == model.BetPending {
			return true
		}
	}
	return false
}

// ScheduleResolution resolves a Mini bet after delay. The drawn digit is
// uniform, then replaced by the bet's own digit with the multiplier's win chance.
func (s *DrawServiceImpl) ScheduleResolution(bet *model.Bet, delay time.Duration) {
	accountID, betID := bet.AccountID, bet.ID
	selected, multiplier := bet.SelectedDigit, bet.Multiplier

	s.scheduler.Schedule("resolve_bet:"+betID, delay, func(ctx context.Context) error {
		digit := s.random.IntN(10)
		if s.random.Float64() < model.MultiplierWinChance(multiplier) {
			digit = selected
		}

		_, err := s.ResolveBet(ctx, accountID, betID, digit)
		if errors.Is(err, model.ErrBetAlreadyResolved) {
			s.logger.Debug().Str("bet_id", betID).Msg("scheduled resolution skipped, bet already resolved")
			return nil
		}
		return err
	})
}

// GetRecentDrawResults returns newest first; limit <= 0 returns everything kept
func (s *DrawServiceImpl) GetRecentDrawResults(ctx context.Context, limit int) ([]*model.DrawResult, error) {
	results, err := s.repos.DrawResults.GetDrawResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("get draw results: %w", err)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []*model.DrawResult{}
	}
	return results, nil
}

func (s *DrawServiceImpl) NextDrawTime(kind model.DrawKind) (time.Time, error) {
	return model.NextDrawTime(kind, s.clock.Now())
}
