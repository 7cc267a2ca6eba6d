package model

import "time"

type DrawKind string

const (
	DrawMain    DrawKind = "main"
	DrawWeekend DrawKind = "weekend"
	DrawMini    DrawKind = "mini"
)

// DrawInfo is the static price list of a draw kind. Interval is zero for
// calendar driven draws.
type DrawInfo struct {
	Name          string        `json:"name"`
	Price         int64         `json:"price"`
	Interval      time.Duration `json:"interval"`
	MaxMultiplier int           `json:"max_multiplier"`
}

var drawInfo = map[DrawKind]DrawInfo{
	DrawMain:    {Name: "Main Draw", Price: 50, Interval: 4 * time.Hour, MaxMultiplier: 10},
	DrawWeekend: {Name: "Weekend Special", Price: 200, MaxMultiplier: 20},
	DrawMini:    {Name: "Quick Draw", Price: 25, Interval: 30 * time.Minute, MaxMultiplier: 5},
}

func DrawKinds() []DrawKind {
	return []DrawKind{DrawMain, DrawWeekend, DrawMini}
}

func ParseDrawKind(s string) (DrawKind, error) {
	for _, k := range DrawKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrInvalidDrawKind
}

func (k DrawKind) Info() (DrawInfo, bool) {
	info, ok := drawInfo[k]
	return info, ok
}

func (k DrawKind) Valid() bool {
	_, ok := drawInfo[k]
	return ok
}

func (k DrawKind) String() string {
	return string(k)
}

type BetStatus string

const (
	BetPending   BetStatus = "pending"
	BetWon       BetStatus = "won"
	BetLost      BetStatus = "lost"
	BetCancelled BetStatus = "cancelled"
)

// Resolved reports whether the bet was settled by a draw
func (s BetStatus) Resolved() bool {
	return s == BetWon || s == BetLost
}

type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// TransactionTag is the source of a credit or the reason of a debit.
type TransactionTag string

const (
	TagDeposit       TransactionTag = "deposit"
	TagWin           TransactionTag = "win"
	TagVipBonus      TransactionTag = "vip_bonus"
	TagDailyBonus    TransactionTag = "daily_bonus"
	TagReferralBonus TransactionTag = "referral_bonus"
	TagRefund        TransactionTag = "refund"
	TagSignup        TransactionTag = "signup"
	TagBet           TransactionTag = "bet"
	TagWithdrawal    TransactionTag = "withdrawal"
)

func (t TransactionTag) IsCredit() bool {
	switch t {
	case TagDeposit, TagWin, TagVipBonus, TagDailyBonus, TagReferralBonus, TagRefund, TagSignup:
		return true
	}
	return false
}

func (t TransactionTag) IsDebit() bool {
	return t == TagBet || t == TagWithdrawal
}

const (
	MaxHistoryEntries = 1000
	MaxDrawResults    = 100
	MinVipLevel       = 1
	MaxVipLevel       = 5
	ReferralBonus     = 500
	MinReferralLength = 6
)

// MultiplierWinChance is the probability that a scheduled Mini resolution
// substitutes the bet's own digit for the drawn one.
func MultiplierWinChance(multiplier int) float64 {
	switch multiplier {
	case 1:
		return 0.9
	case 2:
		return 0.7
	case 5:
		return 0.4
	case 10:
		return 0.2
	case 20:
		return 0.1
	default:
		return 0.1
	}
}

func IsWinningDigit(selected, winning int) bool {
	return selected == winning
}

func ValidDigit(d int) bool {
	return d >= 0 && d <= 9
}

type VipBenefits struct {
	Level         int   `json:"level"`
	DailyBonus    int64 `json:"daily_bonus"`
	WithdrawLimit int64 `json:"withdraw_limit"`
	BetBonus      int   `json:"bet_bonus"`
}

var vipBenefits = map[int]VipBenefits{
	1: {Level: 1, DailyBonus: 25, WithdrawLimit: 10000, BetBonus: 0},
	2: {Level: 2, DailyBonus: 50, WithdrawLimit: 25000, BetBonus: 5},
	3: {Level: 3, DailyBonus: 100, WithdrawLimit: 50000, BetBonus: 10},
	4: {Level: 4, DailyBonus: 200, WithdrawLimit: 100000, BetBonus: 15},
	5: {Level: 5, DailyBonus: 500, WithdrawLimit: 500000, BetBonus: 25},
}

// VipBenefitsFor falls back to level 1 for unknown levels.
func VipBenefitsFor(level int) VipBenefits {
	if b, ok := vipBenefits[level]; ok {
		return b
	}
	return vipBenefits[MinVipLevel]
}

type vipTier struct {
	level    int
	minSpend int64
	minDays  int
}

// highest first
var vipTiers = []vipTier{
	{level: 5, minSpend: 50000, minDays: 30},
	{level: 4, minSpend: 25000, minDays: 20},
	{level: 3, minSpend: 10000, minDays: 15},
	{level: 2, minSpend: 5000, minDays: 7},
}

// VipLevelFor returns the highest level whose spend and age thresholds are both met.
func VipLevelFor(lifetimeSpend int64, ageDays int) int {
	for _, t := range vipTiers {
		if lifetimeSpend >= t.minSpend && ageDays >= t.minDays {
			return t.level
		}
	}
	return MinVipLevel
}

func VipBonusFor(level int) int64 {
	return int64(level) * 100
}

// AccountAgeDays rounds partial days up.
func AccountAgeDays(joined, now time.Time) int {
	d := now.Sub(joined)
	if d < 0 {
		d = -d
	}
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) != 0 {
		days++
	}
	return int(days)
}
