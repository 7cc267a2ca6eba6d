package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"slices"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

type AccountRepositoryImpl struct {
	base
}

func NewAccountRepository(store repository.Store) repository.AccountRepository {
	return &AccountRepositoryImpl{base: base{store: store}}
}

func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, accountID string, tx ...repository.Executor) (*model.Account, error) {
	account := &model.Account{}
	found, err := r.load(ctx, repository.AccountKey(accountID), account, tx...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepositoryImpl) PutAccount(ctx context.Context, account *model.Account, tx ...repository.Executor) error {
	return r.save(ctx, repository.AccountKey(account.ID), account, tx...)
}

func (r *AccountRepositoryImpl) ListAccountIDs(ctx context.Context, tx ...repository.Executor) ([]string, error) {
	var ids []string
	if _, err := r.load(ctx, repository.AccountIndexKey, &ids, tx...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *AccountRepositoryImpl) RegisterAccountID(ctx context.Context, accountID string, tx ...repository.Executor) error {
	ids, err := r.ListAccountIDs(ctx, tx...)
	if err != nil {
		return err
	}
	if slices.Contains(ids, accountID) {
		return nil
	}
	return r.save(ctx, repository.AccountIndexKey, append(ids, accountID), tx...)
}
