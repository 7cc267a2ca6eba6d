package model

import "time"

type Account struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Balance           int64      `json:"balance"`
	VipLevel          int        `json:"vip_level"`
	VipUpgradeDate    *time.Time `json:"vip_upgrade_date,omitempty"`
	LifetimeSpend     int64      `json:"lifetime_spend"`
	JoinDate          time.Time  `json:"join_date"`
	LastDailyBonus    string     `json:"last_daily_bonus,omitempty"`
	LoginStreak       int        `json:"login_streak"`
	ReferralApplied   bool       `json:"referral_applied"`
	ReferredBy        string     `json:"referred_by,omitempty"`
	LastBalanceUpdate *time.Time `json:"last_balance_update,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type Bet struct {
	ID              string     `json:"id"`
	AccountID       string     `json:"account_id"`
	DrawKind        DrawKind   `json:"draw_kind"`
	SelectedDigit   int        `json:"selected_digit"`
	Stake           int64      `json:"stake"`
	EntryFee        int64      `json:"entry_fee"`
	Multiplier      int        `json:"multiplier"`
	TotalCost       int64      `json:"total_cost"`
	PotentialPayout int64      `json:"potential_payout"`
	Status          BetStatus  `json:"status"`
	IsAutoBet       bool       `json:"is_auto_bet"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	WinningDigit    *int       `json:"winning_digit,omitempty"`
	Payout          int64      `json:"payout"`
}

// Settle moves a pending bet to won or lost. It refuses to touch a bet that
// already left pending.
func (b *Bet) Settle(winningDigit int, at time.Time) error {
	if b.Status != BetPending {
		return ErrBetAlreadyResolved
	}
	digit := winningDigit
	resolvedAt := at
	b.WinningDigit = &digit
	b.ResolvedAt = &resolvedAt
	if IsWinningDigit(b.SelectedDigit, winningDigit) {
		b.Status = BetWon
		b.Payout = b.PotentialPayout
	} else {
		b.Status = BetLost
		b.Payout = 0
	}
	return nil
}

type Transaction struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id"`
	Kind          TransactionKind   `json:"kind"`
	Amount        int64             `json:"amount"`
	Tag           TransactionTag    `json:"tag"`
	BalanceBefore int64             `json:"balance_before"`
	BalanceAfter  int64             `json:"balance_after"`
	Timestamp     time.Time         `json:"timestamp"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type AutoBetConfig struct {
	AccountID     string    `json:"account_id"`
	DrawKind      DrawKind  `json:"draw_kind"`
	Stake         int64     `json:"stake"`
	Multiplier    int       `json:"multiplier"`
	SelectedDigit int       `json:"selected_digit"`
	StopOnWin     bool      `json:"stop_on_win"`
	StopOnLoss    bool      `json:"stop_on_loss"`
	MaxBets       int       `json:"max_bets"`
	BetCount      int       `json:"bet_count"`
	Enabled       bool      `json:"enabled"`
	RunID         string    `json:"run_id"`
	LastBetID     string    `json:"last_bet_id,omitempty"`
	StopReason    string    `json:"stop_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Settings struct {
	SoundEnabled         bool    `json:"sound_enabled"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	Theme                string  `json:"theme"`
	Language             string  `json:"language"`
	Currency             string  `json:"currency"`
	AutoPlay             bool    `json:"auto_play"`
	QuickBetAmounts      []int64 `json:"quick_bet_amounts"`
	FavoriteDigits       []int   `json:"favorite_digits"`
	PrivacyMode          bool    `json:"privacy_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		NotificationsEnabled: true,
		Theme:                "dark",
		Language:             "en",
		Currency:             "INR",
		AutoPlay:             false,
		QuickBetAmounts:      []int64{50, 100, 500, 1000},
		FavoriteDigits:       []int{},
		PrivacyMode:          false,
	}
}

// SettingsPatch carries only the fields a caller wants to change.
type SettingsPatch struct {
	SoundEnabled         *bool   `json:"sound_enabled,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	Theme                *string `json:"theme,omitempty" binding:"omitempty,oneof=dark light"`
	Language             *string `json:"language,omitempty" binding:"omitempty,min=2,max=8"`
	Currency             *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	AutoPlay             *bool   `json:"auto_play,omitempty"`
	QuickBetAmounts      []int64 `json:"quick_bet_amounts,omitempty" binding:"omitempty,dive,gt=0"`
	FavoriteDigits       []int   `json:"favorite_digits,omitempty" binding:"omitempty,dive,min=0,max=9"`
	PrivacyMode          *bool   `json:"privacy_mode,omitempty"`
}

func (s Settings) Apply(p SettingsPatch) Settings {
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.AutoPlay != nil {
		s.AutoPlay = *p.AutoPlay
	}
	if p.QuickBetAmounts != nil {
		s.QuickBetAmounts = append([]int64(nil), p.QuickBetAmounts...)
	}
	if p.FavoriteDigits != nil {
		s.FavoriteDigits = append([]int(nil), p.FavoriteDigits...)
	}
	if p.PrivacyMode != nil {
		s.PrivacyMode = *p.PrivacyMode
	}
	return s
}

type DrawResult struct {
	DrawKind     DrawKind  `json:"draw_kind"`
	WinningDigit int       `json:"winning_digit"`
	ResolvedBets int       `json:"resolved_bets"`
	Winners      int       `json:"winners"`
	TotalPayout  int64     `json:"total_payout"`
	DrawnAt      time.Time `json:"drawn_at"`
}

type BetFilter struct {
	Status   BetStatus
	DrawKind DrawKind
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

func (f BetFilter) Match(b *Bet) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.DrawKind != "" && b.DrawKind != f.DrawKind {
		return false
	}
	if f.From != nil && b.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && b.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

type TransactionFilter struct {
	Kind  TransactionKind
	From  *time.Time
	To    *time.Time
	Limit int
}

func (f TransactionFilter) Match(t *Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.From != nil && t.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Timestamp.After(*f.To) {
		return false
	}
	return true
}

type BettingStats struct {
	TotalBets     int     `json:"total_bets"`
	ActiveBets    int     `json:"active_bets"`
	WonBets       int     `json:"won_bets"`
	LostBets      int     `json:"lost_bets"`
	TotalWinnings int64   `json:"total_winnings"`
	TotalSpent    int64   `json:"total_spent"`
	NetProfit     int64   `json:"net_profit"`
	WinRate       float64 `json:"win_rate"`
}

type BalanceStatistics struct {
	TotalDeposits    int64 `json:"total_deposits"`
	TotalWithdrawals int64 `json:"total_withdrawals"`
	TotalWinnings    int64 `json:"total_winnings"`
	TotalBets        int64 `json:"total_bets"`
	NetProfit        int64 `json:"net_profit"`
	TransactionCount int   `json:"transaction_count"`
}

type BetSuggestion struct {
	Amount            int64    `json:"amount"`
	Multiplier        int      `json:"multiplier"`
	DrawKind          DrawKind `json:"draw_kind"`
	RecommendedDigits []int    `json:"recommended_digits"`
}

type VipUpgrade struct {
	Upgraded bool  `json:"upgraded"`
	Level    int   `json:"level"`
	Bonus    int64 `json:"bonus,omitempty"`
}

type DailyBonus struct {
	Granted     bool  `json:"granted"`
	Amount      int64 `json:"amount,omitempty"`
	LoginStreak int   `json:"login_streak"`
}
