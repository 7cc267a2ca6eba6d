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
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultBetLimit = 50

type BetServiceImpl struct {
	repos     *repository.Repositories
	accounts  AccountService
	draws     DrawService
	clock     scheduler.Clock
	random    DigitSource
	publisher events.Publisher
	game      config.GameConfig
	logger    zerolog.Logger
}

func NewBetService(
	repos *repository.Repositories,
	accounts AccountService,
	draws DrawService,
	clock scheduler.Clock,
	random DigitSource,
	publisher events.Publisher,
	game config.GameConfig,
	logger zerolog.Logger,
) BetService {
	return &BetServiceImpl{
		repos:     repos,
		accounts:  accounts,
		draws:     draws,
		clock:     clock,
		random:    random,
		publisher: publisher,
		game:      game,
		logger:    logger,
	}
}

// validateBet checks a request against the draw's price list and returns its costs
func validateBet(req *model.BetRequest) (model.DrawInfo, int64, int64, error) {
	if req == nil {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: empty bet request", model.ErrValidation)
	}
	info, ok := req.DrawKind.Info()
	if !ok {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: %w: %q", model.ErrValidation, model.ErrInvalidDrawKind, req.DrawKind)
	}
	if !model.ValidDigit(req.SelectedDigit) {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: selected digit must be between 0 and 9", model.ErrValidation)
	}
	if req.Stake <= 0 {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: stake must be positive", model.ErrValidation)
	}
	if req.Multiplier < 1 || req.Multiplier > info.MaxMultiplier {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: multiplier must be between 1 and %d for %s", model.ErrValidation, info.MaxMultiplier, req.DrawKind)
	}

	// potentialPayout must fit in int64
	if req.Stake > math.MaxInt64/int64(req.Multiplier)-info.Price {
		return model.DrawInfo{}, 0, 0, fmt.Errorf("%w: stake %d is too large for multiplier %d", model.ErrValidation, req.Stake, req.Multiplier)
	}

	totalCost := req.Stake + info.Price
	return info, totalCost, totalCost * int64(req.Multiplier), nil
}

func (s *BetServiceImpl) PlaceBet(ctx context.Context, accountID string, req *model.BetRequest) (*model.Bet, error) {
	return s.placeBet(ctx, accountID, req, nil)
}

func (s *BetServiceImpl) PlaceAutoBet(ctx context.Context, accountID string, req *model.BetRequest, record func(tx repository.Executor, bet *model.Bet) error) (*model.Bet, error) {
	return s.placeBet(ctx, accountID, req, record)
}

func (s *BetServiceImpl) placeBet(ctx context.Context, accountID string, req *model.BetRequest, record func(tx repository.Executor, bet *model.Bet) error) (*model.Bet, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	info, totalCost, potentialPayout, err := validateBet(req)
	if err != nil {
		return nil, err
	}

	// Debit and bet record commit together or not at all
	var bet *model.Bet
	err = runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		bet = &model.Bet{
			ID:              uuid.NewString(),
			AccountID:       accountID,
			DrawKind:        req.DrawKind,
			SelectedDigit:   req.SelectedDigit,
			Stake:           req.Stake,
			EntryFee:        info.Price,
			Multiplier:      req.Multiplier,
			TotalCost:       totalCost,
			PotentialPayout: potentialPayout,
			Status:          model.BetPending,
			IsAutoBet:       req.IsAutoBet,
			CreatedAt:       s.clock.Now(),
		}

		_, err := s.accounts.DeductMoney(ctx, accountID, totalCost, model.TagBet,
			map[string]string{"bet_id": bet.ID, "draw_kind": bet.DrawKind.String()}, tx)
		if err != nil {
			return err
		}

		bets, err := s.repos.Bets.GetBets(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get bets: %w", err)
		}
		if err := s.repos.Bets.PutBets(ctx, accountID, append([]*model.Bet{bet}, bets...), tx); err != nil {
			return fmt.Errorf("put bets: %w", err)
		}
		if record != nil {
			return record(tx, bet)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_id", accountID).
		Str("bet_id", bet.ID).
		Str("draw_kind", bet.DrawKind.String()).
		Int("selected_digit", bet.SelectedDigit).
		Int64("total_cost", bet.TotalCost).
		Bool("is_auto_bet", bet.IsAutoBet).
		Msg("bet placed")

	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.BetPlaced,
		AccountID: accountID,
		Timestamp: bet.CreatedAt,
		Data: map[string]any{
			"bet_id":           bet.ID,
			"draw_kind":        bet.DrawKind,
			"selected_digit":   bet.SelectedDigit,
			"stake":            bet.Stake,
			"multiplier":       bet.Multiplier,
			"total_cost":       bet.TotalCost,
			"potential_payout": bet.PotentialPayout,
			"is_auto_bet":      bet.IsAutoBet,
		},
	})

	if bet.DrawKind == model.DrawMini {
		s.draws.ScheduleResolution(bet, s.game.MiniResolveDelay)
	}
	return bet, nil
}

func (s *BetServiceImpl) GetBetsForAccount(ctx context.Context, accountID string, filter model.BetFilter) ([]*model.Bet, int, error) {
	if accountID == "" {
		return nil, 0, model.ErrNotAuthenticated
	}
	bets, err := s.repos.Bets.GetBets(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("get bets: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBetLimit
	}
	offset := max(filter.Offset, 0)

	page := make([]*model.Bet, 0, limit)
	total := 0
	for _, b := range bets {
		if !filter.Match(b) {
			continue
		}
		if total >= offset && len(page) < limit {
			page = append(page, b)
		}
		total++
	}
	return page, total, nil
}

func (s *BetServiceImpl) GetActiveBets(ctx context.Context, accountID string) ([]*model.Bet, error) {
	bets, _, err := s.GetBetsForAccount(ctx, accountID, model.BetFilter{Status: model.BetPending, Limit: model.MaxHistoryEntries})
	return bets, err
}

func (s *BetServiceImpl) GetBettingStats(ctx context.Context, accountID string) (*model.BettingStats, error) {
	if accountID == "" {
		return nil, model.ErrNotAuthenticated
	}
	bets, err := s.repos.Bets.GetBets(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get bets: %w", err)
	}
	return bettingStats(bets), nil
}

func bettingStats(bets []*model.Bet) *model.BettingStats {
	stats := &model.BettingStats{TotalBets: len(bets)}
	for _, b := range bets {
		stats.TotalSpent += b.TotalCost
		switch b.Status {
		case model.BetPending:
			stats.ActiveBets++
		case model.BetWon:
			stats.WonBets++
			stats.TotalWinnings += b.Payout
		case model.BetLost:
			stats.LostBets++
		}
	}
	stats.NetProfit = stats.TotalWinnings - stats.TotalSpent

	if decided := stats.WonBets + stats.LostBets; decided > 0 {
		stats.WinRate = decimal.NewFromInt(int64(stats.WonBets)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(decided))).
			Round(1).
			InexactFloat64()
	}
	return stats
}

// GetRecommendedDigits returns up to three of the least drawn recent digits
func (s *BetServiceImpl) GetRecommendedDigits(ctx context.Context) ([]int, error) {
	results, err := s.draws.GetRecentDrawResults(ctx, 0)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return []int{s.random.IntN(10), s.random.IntN(10), s.random.IntN(10)}, nil
	}

	freq := make(map[int]int)
	for _, r := range results {
		freq[r.WinningDigit]++
	}
	digits := make([]int, 0, len(freq))
	for d := range freq {
		digits = append(digits, d)
	}
	sort.Slice(digits, func(i, j int) bool {
		if freq[digits[i]] != freq[digits[j]] {
			return freq[digits[i]] < freq[digits[j]]
		}
		return digits[i] < digits[j]
	})
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits, nil
}

var (
	cautiousFactor = decimal.NewFromFloat(0.7)
	vipFactor      = decimal.NewFromFloat(1.2)
)

func (s *BetServiceImpl) GetBetSuggestion(ctx context.Context, accountID string) (*model.BetSuggestion, error) {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetBettingStats(ctx, accountID)
	if err != nil {
		return nil, err
	}
	digits, err := s.GetRecommendedDigits(ctx)
	if err != nil {
		return nil, err
	}

	suggestion := suggestBet(account.Balance, stats.WinRate, account.VipLevel)
	suggestion.RecommendedDigits = digits
	return suggestion, nil
}

func suggestBet(balance int64, winRate float64, vipLevel int) *model.BetSuggestion {
	var sg model.BetSuggestion
	switch {
	case balance > 10000:
		sg = model.BetSuggestion{Amount: 500, Multiplier: 2, DrawKind: model.DrawMain}
	case balance > 5000:
		sg = model.BetSuggestion{Amount: 200, Multiplier: 2, DrawKind: model.DrawMain}
	case balance > 1000:
		sg = model.BetSuggestion{Amount: 100, Multiplier: 2, DrawKind: model.DrawMini}
	default:
		sg = model.BetSuggestion{Amount: 50, Multiplier: 1, DrawKind: model.DrawMini}
	}

	switch {
	case winRate < 30:
		sg.Multiplier = max(1, sg.Multiplier-1)
		sg.Amount = decimal.NewFromInt(sg.Amount).Mul(cautiousFactor).Floor().IntPart()
	case winRate > 70:
		sg.Multiplier = min(5, sg.Multiplier+1)
	}

	if vipLevel >= 3 {
		sg.Amount = decimal.NewFromInt(sg.Amount).Mul(vipFactor).Floor().IntPart()
	}
	return &sg
}

// RecoverPendingMiniBets runs at startup. Mini bets past the stale age are
// resolved with a uniform draw, younger ones get the rest of their delay.
func (s *BetServiceImpl) RecoverPendingMiniBets(ctx context.Context) (int, error) {
	ids, err := s.repos.Accounts.ListAccountIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list accounts: %w", err)
	}

	now := s.clock.Now()
	recovered := 0
	for _, accountID := range ids {
		bets, err := s.repos.Bets.GetBets(ctx, accountID)
		if err != nil {
			return recovered, fmt.Errorf("get bets for %s: %w", accountID, err)
		}

		for _, b := range bets {
			if b.DrawKind != model.DrawMini || b.Status != model.BetPending {
				continue
			}

			age := now.Sub(b.CreatedAt)
			if age > s.game.StaleMiniAge {
				_, err := s.draws.ResolveBet(ctx, accountID, b.ID, s.random.IntN(10))
				if err != nil && !errors.Is(err, model.ErrBetAlreadyResolved) {
					s.logger.Error().Err(err).Str("account_id", accountID).Str("bet_id", b.ID).Msg("failed to resolve stale bet")
					continue
				}
			} else {
				s.draws.ScheduleResolution(b, max(s.game.MiniResolveDelay-age, 0))
			}
			recovered++
		}
	}

	if recovered > 0 {
		s.logger.Info().Int("count", recovered).Msg("pending mini bets recovered")
	}
	return recovered, nil
}
