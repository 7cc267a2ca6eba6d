package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
)

var _ repository.DrawResultRepository = (*DrawResultRepositoryImpl)(nil)

type DrawResultRepositoryImpl struct {
	base
}

func NewDrawResultRepository(store repository.Store) repository.DrawResultRepository {
	return &DrawResultRepositoryImpl{base: base{store: store}}
}

func (r *DrawResultRepositoryImpl) GetDrawResults(ctx context.Context, tx ...repository.Executor) ([]*model.DrawResult, error) {
	var results []*model.DrawResult
	if _, err := r.load(ctx, repository.RecentDrawResultsKey, &results, tx...); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *DrawResultRepositoryImpl) PutDrawResults(ctx context.Context, results []*model.DrawResult, tx ...repository.Executor) error {
	return r.save(ctx, repository.RecentDrawResultsKey, capHead(results, model.MaxDrawResults), tx...)
}
