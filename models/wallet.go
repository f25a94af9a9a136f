package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet holds one balance row per user. Balance is only ever mutated inside a
// transaction that locks the row FOR UPDATE, so concurrent settlements on the
// same user serialize at the database.
type Wallet struct {
	gorm.Model

	UserID         uint            `gorm:"uniqueIndex" json:"user_id"`
	Balance        decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"balance"`
	TotalDeposited decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"total_deposited"`
	TotalWithdrawn decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"total_withdrawn"`
}
