package services

import (
	"errors"
	"os"
	"sort"

	"caracoroa/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount       = errors.New("invalid bet amount")
	ErrInvalidTier         = errors.New("invalid bet level")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrBadLevelOrdering = errors.New("bet levels must pair higher multipliers with lower win chances")
)

// Tier is one risk level as seen by a single settlement.
type Tier struct {
	Level      int
	Multiplier decimal.Decimal
	WinChance  decimal.Decimal
}

// GameConfig is an immutable per-request snapshot of the betting rules.
// Admins edit the underlying rows at any time, but one settlement only ever
// sees the values it loaded up front.
type GameConfig struct {
	MinBet decimal.Decimal
	Tiers  map[int]Tier
}

// Outcome is the resolved wager before any storage write.
type Outcome struct {
	Result string
	Won    bool
	Payout decimal.Decimal
}

// LoadGameConfig reads the configured bet levels and minimum stake into a
// snapshot, rejecting a tier table that violates the ordering invariant.
func LoadGameConfig(db *gorm.DB) (GameConfig, error) {
	var levels []models.BetLevel
	if err := db.Order("level asc").Find(&levels).Error; err != nil {
		return GameConfig{}, err
	}
	if err := ValidateLevels(levels); err != nil {
		return GameConfig{}, err
	}

	cfg := GameConfig{MinBet: minBetAmount(), Tiers: make(map[int]Tier, len(levels))}
	for _, l := range levels {
		cfg.Tiers[l.Level] = Tier{Level: l.Level, Multiplier: l.Multiplier, WinChance: l.WinChance}
	}
	return cfg, nil
}

// ValidateLevels enforces the tier invariant: ordered by level, multipliers
// must be strictly increasing and above 1, win chances strictly decreasing
// within (0, 100].
func ValidateLevels(levels []models.BetLevel) error {
	if len(levels) == 0 {
		return ErrBadLevelOrdering
	}

	sorted := make([]models.BetLevel, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	for i, l := range sorted {
		if l.Multiplier.Cmp(one) <= 0 {
			return ErrBadLevelOrdering
		}
		if l.WinChance.Cmp(decimal.Zero) <= 0 || l.WinChance.Cmp(hundred) > 0 {
			return ErrBadLevelOrdering
		}
		if i > 0 {
			prev := sorted[i-1]
			if l.Level == prev.Level {
				return ErrBadLevelOrdering
			}
			if l.Multiplier.Cmp(prev.Multiplier) <= 0 || l.WinChance.Cmp(prev.WinChance) >= 0 {
				return ErrBadLevelOrdering
			}
		}
	}
	return nil
}

// ValidateWager checks one wager against the snapshot. Runs before any store
// access; each failure keeps its own sentinel so the handler can answer with
// a distinct message.
func (cfg GameConfig) ValidateWager(choice string, amount decimal.Decimal, level int) (Tier, error) {
	if amount.Cmp(decimal.Zero) <= 0 || amount.Cmp(cfg.MinBet) < 0 {
		return Tier{}, ErrInvalidAmount
	}
	tier, ok := cfg.Tiers[level]
	if !ok {
		return Tier{}, ErrInvalidTier
	}
	if choice != models.ChoiceCara && choice != models.ChoiceCoroa {
		return Tier{}, ErrInvalidChoice
	}
	return tier, nil
}

// EnsureFunds rejects a wager whose stake exceeds the balance it would be
// settled against. Pure; the handler calls it with the locked wallet row.
func EnsureFunds(balance, amount decimal.Decimal) error {
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// Settle resolves one wager against a draw. The player wins only when the
// guessed side matches the coin AND the roll lands at or under the tier's win
// chance; matching the coin alone pays nothing on the harder tiers most of
// the time.
func Settle(choice string, amount decimal.Decimal, tier Tier, draw Draw) Outcome {
	won := choice == draw.Result && draw.WinRoll.Cmp(tier.WinChance) <= 0

	payout := decimal.Zero
	if won {
		payout = amount.Mul(tier.Multiplier).Round(2)
	}

	return Outcome{Result: draw.Result, Won: won, Payout: payout}
}

func minBetAmount() decimal.Decimal {
	if v := os.Getenv("MIN_BET_AMOUNT"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.Cmp(decimal.Zero) > 0 {
			return d
		}
	}
	return decimal.NewFromInt(1)
}
