package admin

import (
	"errors"
	"log"

	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNotPending = errors.New("withdrawal is not pending")

func ListPendingWithdrawals(c *fiber.Ctx) error {
	var pending []models.Transaction
	if err := database.DB.
		Where("type = ? AND status = ?", models.TrxTypeWithdrawal, models.TrxStatusPending).
		Order("created_at asc").
		Find(&pending).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
	return helpers.JSONSuccess(c, fiber.Map{"withdrawals": pending})
}

// ApproveWithdrawal marks a pending withdrawal completed. The money already
// left the balance when the request was made, so no wallet write happens here.
func ApproveWithdrawal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid withdrawal id")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		trx, err := lockPendingWithdrawal(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(trx).Update("status", models.TrxStatusCompleted).Error
	})
	return withdrawalResult(c, err, "Withdrawal approved")
}

// RejectWithdrawal refunds the held amount and marks the row rejected, both
// inside one transaction with the wallet row locked.
func RejectWithdrawal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid withdrawal id")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		trx, err := lockPendingWithdrawal(tx, id)
		if err != nil {
			return err
		}

		var w models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", trx.UserID).First(&w).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Wallet{}).Where("id = ?", w.ID).Updates(map[string]any{
			"balance":         w.Balance.Add(trx.Amount),
			"total_withdrawn": w.TotalWithdrawn.Sub(trx.Amount),
		}).Error; err != nil {
			return err
		}

		return tx.Model(trx).Update("status", models.TrxStatusRejected).Error
	})
	return withdrawalResult(c, err, "Withdrawal rejected and refunded")
}

func lockPendingWithdrawal(tx *gorm.DB, id int) (*models.Transaction, error) {
	var trx models.Transaction
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND type = ?", id, models.TrxTypeWithdrawal).
		First(&trx).Error; err != nil {
		return nil, err
	}
	if trx.Status != models.TrxStatusPending {
		return nil, errNotPending
	}
	return &trx, nil
}

func withdrawalResult(c *fiber.Ctx, err error, message string) error {
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, fiber.Map{"message": message})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helpers.JSONError(c, fiber.StatusNotFound, "Withdrawal not found")
	case errors.Is(err, errNotPending):
		return helpers.JSONError(c, fiber.StatusConflict, "Withdrawal already processed")
	default:
		log.Println("❌ Withdrawal update failed:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
}
