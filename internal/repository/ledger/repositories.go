package ledger

import "lottery-engine/internal/repository"

// NewRepositories builds every typed repository over one store
func NewRepositories(store repository.Store) *repository.Repositories {
	return &repository.Repositories{
		DB:           store,
		Accounts:     NewAccountRepository(store),
		Bets:         NewBetRepository(store),
		Transactions: NewTransactionRepository(store),
		AutoBets:     NewAutoBetRepository(store),
		Settings:     NewSettingsRepository(store),
		DrawResults:  NewDrawResultRepository(store),
	}
}
