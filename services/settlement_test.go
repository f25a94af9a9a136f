package services

import (
	"errors"
	"testing"

	"caracoroa/models"

	"github.com/shopspring/decimal"
)

func testConfig() GameConfig {
	return GameConfig{
		MinBet: decimal.NewFromInt(1),
		Tiers: map[int]Tier{
			1: {Level: 1, Multiplier: decimal.NewFromFloat(1.9), WinChance: decimal.NewFromInt(50)},
			2: {Level: 2, Multiplier: decimal.NewFromFloat(4.9), WinChance: decimal.NewFromInt(30)},
			3: {Level: 3, Multiplier: decimal.NewFromFloat(9.9), WinChance: decimal.NewFromInt(10)},
		},
	}
}

func draw(result string, roll float64) Draw {
	return Draw{Seed: "test-seed", Result: result, WinRoll: decimal.NewFromFloat(roll)}
}

func TestSettleWin(t *testing.T) {
	cfg := testConfig()
	amount := decimal.NewFromInt(10)

	out := Settle(models.ChoiceCara, amount, cfg.Tiers[1], draw(models.ChoiceCara, 10))
	if !out.Won {
		t.Fatal("expected win: matched coin and roll under chance")
	}
	if !out.Payout.Equal(decimal.NewFromInt(19)) {
		t.Fatalf("payout = %s, want 19", out.Payout)
	}

	balance := decimal.NewFromInt(100)
	newBalance := balance.Add(out.Payout).Sub(amount)
	if !newBalance.Equal(decimal.NewFromInt(109)) {
		t.Fatalf("newBalance = %s, want 109", newBalance)
	}
}

func TestSettleCoinMismatchLosesRegardlessOfRoll(t *testing.T) {
	cfg := testConfig()
	amount := decimal.NewFromInt(10)

	for _, roll := range []float64{0, 10, 49.99, 99.99} {
		out := Settle(models.ChoiceCara, amount, cfg.Tiers[1], draw(models.ChoiceCoroa, roll))
		if out.Won {
			t.Fatalf("roll %v: wrong coin side must never win", roll)
		}
		if !out.Payout.IsZero() {
			t.Fatalf("roll %v: payout = %s, want 0", roll, out.Payout)
		}
	}

	balance := decimal.NewFromInt(100)
	newBalance := balance.Add(decimal.Zero).Sub(amount)
	if !newBalance.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("newBalance = %s, want 90", newBalance)
	}
}

func TestSettleRollAgainstChance(t *testing.T) {
	cfg := testConfig()
	amount := decimal.NewFromInt(10)

	// Matching coin side alone is not enough on any tier.
	if out := Settle(models.ChoiceCara, amount, cfg.Tiers[1], draw(models.ChoiceCara, 80)); out.Won {
		t.Fatal("roll above the tier chance must lose")
	}

	// Boundary: a roll exactly at the chance still wins.
	if out := Settle(models.ChoiceCara, amount, cfg.Tiers[1], draw(models.ChoiceCara, 50)); !out.Won {
		t.Fatal("roll equal to the tier chance must win")
	}

	// Harder tier, same roll: 40 wins on level 1 but loses on level 3.
	if out := Settle(models.ChoiceCoroa, amount, cfg.Tiers[1], draw(models.ChoiceCoroa, 40)); !out.Won {
		t.Fatal("roll 40 must win at 50% chance")
	}
	if out := Settle(models.ChoiceCoroa, amount, cfg.Tiers[3], draw(models.ChoiceCoroa, 40)); out.Won {
		t.Fatal("roll 40 must lose at 10% chance")
	}
}

func TestSettlePayoutExactness(t *testing.T) {
	cfg := testConfig()

	out := Settle(models.ChoiceCara, decimal.RequireFromString("0.10"), cfg.Tiers[3], draw(models.ChoiceCara, 5))
	if !out.Payout.Equal(decimal.RequireFromString("0.99")) {
		t.Fatalf("payout = %s, want 0.99", out.Payout)
	}

	out = Settle(models.ChoiceCara, decimal.RequireFromString("33.33"), cfg.Tiers[2], draw(models.ChoiceCara, 5))
	if !out.Payout.Equal(decimal.RequireFromString("163.32")) {
		t.Fatalf("payout = %s, want 163.32", out.Payout)
	}
}

func TestValidateWager(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		name   string
		choice string
		amount decimal.Decimal
		level  int
		want   error
	}{
		{"zero amount", models.ChoiceCara, decimal.Zero, 1, ErrInvalidAmount},
		{"negative amount", models.ChoiceCara, decimal.NewFromInt(-5), 1, ErrInvalidAmount},
		{"below minimum", models.ChoiceCara, decimal.RequireFromString("0.50"), 1, ErrInvalidAmount},
		{"unknown level", models.ChoiceCara, decimal.NewFromInt(10), 4, ErrInvalidTier},
		{"bad choice", "heads", decimal.NewFromInt(10), 1, ErrInvalidChoice},
		{"ok", models.ChoiceCoroa, decimal.NewFromInt(10), 2, nil},
	}

	for _, tc := range cases {
		tier, err := cfg.ValidateWager(tc.choice, tc.amount, tc.level)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
		if tc.want == nil && tier.Level != tc.level {
			t.Fatalf("%s: tier = %d, want %d", tc.name, tier.Level, tc.level)
		}
	}
}

func TestEnsureFunds(t *testing.T) {
	if err := EnsureFunds(decimal.NewFromInt(5), decimal.NewFromInt(10)); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("balance 5 vs stake 10: err = %v, want ErrInsufficientBalance", err)
	}
	if err := EnsureFunds(decimal.NewFromInt(10), decimal.NewFromInt(10)); err != nil {
		t.Fatalf("balance equal to stake must be allowed: %v", err)
	}
	if err := EnsureFunds(decimal.RequireFromString("10.01"), decimal.NewFromInt(10)); err != nil {
		t.Fatalf("balance above stake must be allowed: %v", err)
	}
}

func TestValidateLevelsOrdering(t *testing.T) {
	level := func(l int, mult, chance string) models.BetLevel {
		return models.BetLevel{
			Level:      l,
			Multiplier: decimal.RequireFromString(mult),
			WinChance:  decimal.RequireFromString(chance),
		}
	}

	good := []models.BetLevel{
		level(1, "1.9", "50"),
		level(2, "4.9", "30"),
		level(3, "9.9", "10"),
	}
	if err := ValidateLevels(good); err != nil {
		t.Fatalf("default levels rejected: %v", err)
	}

	// Order of the slice must not matter, only the level numbers.
	shuffled := []models.BetLevel{good[2], good[0], good[1]}
	if err := ValidateLevels(shuffled); err != nil {
		t.Fatalf("shuffled levels rejected: %v", err)
	}

	bad := [][]models.BetLevel{
		{},
		{level(1, "1.9", "50"), level(2, "4.9", "60")},  // chance not decreasing
		{level(1, "4.9", "50"), level(2, "1.9", "30")},  // multiplier not increasing
		{level(1, "0.9", "50")},                         // multiplier must exceed 1
		{level(1, "1.9", "0")},                          // chance must be positive
		{level(1, "1.9", "101")},                        // chance capped at 100
		{level(1, "1.9", "50"), level(2, "1.9", "30")},  // equal multipliers
		{level(1, "1.9", "50"), level(2, "4.9", "50")},  // equal chances
		{level(1, "1.9", "50"), level(1, "4.9", "30")},  // duplicate level id
	}
	for i, levels := range bad {
		if err := ValidateLevels(levels); !errors.Is(err, ErrBadLevelOrdering) {
			t.Fatalf("case %d: err = %v, want ErrBadLevelOrdering", i, err)
		}
	}
}
