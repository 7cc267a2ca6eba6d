package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
)

var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

type TransactionRepositoryImpl struct {
	base
}

func NewTransactionRepository(store repository.Store) repository.TransactionRepository {
	return &TransactionRepositoryImpl{base: base{store: store}}
}

func (r *TransactionRepositoryImpl) GetTransactions(ctx context.Context, accountID string, tx ...repository.Executor) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	if _, err := r.load(ctx, repository.TransactionsKey(accountID), &transactions, tx...); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepositoryImpl) PutTransactions(ctx context.Context, accountID string, transactions []*model.Transaction, tx ...repository.Executor) error {
	return r.save(ctx, repository.TransactionsKey(accountID), capHead(transactions, model.MaxHistoryEntries), tx...)
}
