package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxTypeDeposit    = "deposit"
	TrxTypeWithdrawal = "withdrawal"

	TrxStatusPending   = "pending"
	TrxStatusCompleted = "completed"
	TrxStatusRejected  = "rejected"
)

// Transaction records wallet deposits and withdrawal requests. Deposits are
// auto-completed (simulated PIX); withdrawals stay pending until an admin
// approves or rejects them.
type Transaction struct {
	gorm.Model

	UserID     uint            `gorm:"index" json:"user_id"`
	Type       string          `gorm:"size:16;index" json:"type"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Status     string          `gorm:"size:16;index" json:"status"`
	ExternalID string          `gorm:"size:64;uniqueIndex" json:"external_id"`
	PixKey     string          `gorm:"size:140" json:"pix_key,omitempty"`

	Meta datatypes.JSON `gorm:"type:jsonb" json:"meta,omitempty"`
}
