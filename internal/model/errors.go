package model

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPersistence        = errors.New("persistence failure")
	ErrAccountNotFound    = errors.New("account not found")
	ErrBetNotFound        = errors.New("bet not found")
	ErrBetAlreadyResolved = errors.New("bet already resolved")
	ErrAutoPlayDisabled   = errors.New("auto play disabled")
	ErrNoPendingBets      = errors.New("no pending bets")
	ErrInvalidDrawKind    = errors.New("invalid draw kind")
)
