package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
)

var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

type BetRepositoryImpl struct {
	base
}

func NewBetRepository(store repository.Store) repository.BetRepository {
	return &BetRepositoryImpl{base: base{store: store}}
}

func (r *BetRepositoryImpl) GetBets(ctx context.Context, accountID string, tx ...repository.Executor) ([]*model.Bet, error) {
	var bets []*model.Bet
	if _, err := r.load(ctx, repository.BetsKey(accountID), &bets, tx...); err != nil {
		return nil, err
	}
	return bets, nil
}

func (r *BetRepositoryImpl) PutBets(ctx context.Context, accountID string, bets []*model.Bet, tx ...repository.Executor) error {
	return r.save(ctx, repository.BetsKey(accountID), capHead(bets, model.MaxHistoryEntries), tx...)
}
