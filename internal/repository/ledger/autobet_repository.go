package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
)

var _ repository.AutoBetRepository = (*AutoBetRepositoryImpl)(nil)

type AutoBetRepositoryImpl struct {
	base
}

func NewAutoBetRepository(store repository.Store) repository.AutoBetRepository {
	return &AutoBetRepositoryImpl{base: base{store: store}}
}

func (r *AutoBetRepositoryImpl) GetAutoBetConfig(ctx context.Context, accountID string, tx ...repository.Executor) (*model.AutoBetConfig, error) {
	cfg := &model.AutoBetConfig{}
	found, err := r.load(ctx, repository.AutoBetConfigKey(accountID), cfg, tx...)
	if err != nil || !found {
		return nil, err
	}
	return cfg, nil
}

func (r *AutoBetRepositoryImpl) PutAutoBetConfig(ctx context.Context, cfg *model.AutoBetConfig, tx ...repository.Executor) error {
	return r.save(ctx, repository.AutoBetConfigKey(cfg.AccountID), cfg, tx...)
}
