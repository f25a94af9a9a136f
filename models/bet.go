package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ChoiceCara  = "cara"
	ChoiceCoroa = "coroa"
)

// Bet is the append-only ledger of settled wagers. Rows are written exactly
// once by the settlement handler and never updated or deleted. Seed is kept so
// an outcome can be re-derived and proven fair after the fact.
type Bet struct {
	gorm.Model

	UserID uint            `gorm:"index" json:"user_id"`
	Amount decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Choice string          `gorm:"size:8" json:"choice"`
	Level  int             `json:"level"`
	Result string          `gorm:"size:8" json:"result"`
	Won    bool            `json:"won"`
	Payout decimal.Decimal `gorm:"type:numeric(14,2)" json:"payout"`
	Seed   string          `gorm:"size:36" json:"seed"`
}
