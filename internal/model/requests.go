package model

import "time"

type OpenAccountRequest struct {
	Name           string `json:"name" binding:"required,max=64" example:"alice"`
	InitialBalance int64  `json:"initial_balance" binding:"gte=0" example:"1000"`
}

type SessionRequest struct {
	AccountID  string `json:"account_id" binding:"required" example:"3f0a7c1e-8a52-4a8e-9d1b-0f4f5c9b8e21"`
	RememberMe bool   `json:"remember_me" example:"false"`
}

type SessionResponse struct {
	AccountID string    `json:"account_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AmountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0" example:"500"`
}

type ReferralRequest struct {
	Code string `json:"code" binding:"required" example:"FRIEND42"`
}

type BetRequest struct {
	DrawKind      DrawKind `json:"draw_kind" binding:"required,drawkind" example:"mini" enums:"main,weekend,mini"`
	SelectedDigit int      `json:"selected_digit" binding:"min=0,max=9" example:"7"`
	Stake         int64    `json:"stake" binding:"required,gt=0" example:"100"`
	Multiplier    int      `json:"multiplier" binding:"required,min=1" example:"2"`
	IsAutoBet     bool     `json:"-"`
}

// AutoBetRequest leaves zero values to the controller defaults.
// A nil SelectedDigit picks a random digit when the run starts.
type AutoBetRequest struct {
	DrawKind      DrawKind `json:"draw_kind,omitempty" binding:"omitempty,drawkind" example:"mini" enums:"main,weekend,mini"`
	SelectedDigit *int     `json:"selected_digit,omitempty" binding:"omitempty,min=0,max=9" example:"3"`
	Stake         int64    `json:"stake,omitempty" binding:"omitempty,gt=0" example:"25"`
	Multiplier    int      `json:"multiplier,omitempty" binding:"omitempty,min=1" example:"1"`
	StopOnWin     bool     `json:"stop_on_win"`
	StopOnLoss    bool     `json:"stop_on_loss"`
	MaxBets       int      `json:"max_bets,omitempty" binding:"omitempty,min=1" example:"10"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance" example:"875"`
}

type BetListResponse struct {
	Bets   []*Bet `json:"bets"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
}

type NextDrawResponse struct {
	DrawKind DrawKind  `json:"draw_kind"`
	Info     DrawInfo  `json:"info"`
	NextDraw time.Time `json:"next_draw"`
}
