package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BetLevel is one admin-editable risk tier: the payout multiplier paid on a
// win and the chance (percent) that a correct coin guess actually wins.
// Higher multipliers must carry strictly lower win chances; the invariant is
// enforced in services.ValidateLevels before any row is written.
type BetLevel struct {
	gorm.Model

	Level      int             `gorm:"uniqueIndex" json:"level"`
	Multiplier decimal.Decimal `gorm:"type:numeric(6,2)" json:"multiplier"`
	WinChance  decimal.Decimal `gorm:"type:numeric(5,2)" json:"win_chance"`
}
