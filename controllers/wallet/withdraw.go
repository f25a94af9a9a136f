package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WithdrawRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=20"`
	PixKey string  `json:"pixKey" validate:"required"`
}

var errInsufficientFunds = errors.New("insufficient funds for withdrawal")

// Withdraw deducts the amount immediately and leaves the transaction pending
// until an admin approves or rejects it. A rejection refunds through the
// admin endpoint, never here.
func Withdraw(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid withdrawal parameters")
	}
	if err := validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "PixKey" {
					return helpers.JSONError(c, fiber.StatusBadRequest, "PIX key is required")
				}
			}
		}
		return helpers.JSONError(c, fiber.StatusBadRequest, "Minimum withdrawal is R$ 20.00")
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)
	externalID := fmt.Sprintf("WITHDRAWAL_%d_%s", time.Now().UnixMilli(), strings.Split(uuid.New().String(), "-")[0])

	meta, _ := json.Marshal(fiber.Map{
		"provider":     "pix-simulated",
		"requested_at": time.Now().UTC().Format(time.RFC3339),
	})

	var resp fiber.Map

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var w models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", user.ID).First(&w).Error; err != nil {
			return err
		}

		if w.Balance.Cmp(amount) < 0 {
			return errInsufficientFunds
		}

		trx := models.Transaction{
			UserID:     user.ID,
			Type:       models.TrxTypeWithdrawal,
			Amount:     amount,
			Status:     models.TrxStatusPending,
			ExternalID: externalID,
			PixKey:     req.PixKey,
			Meta:       datatypes.JSON(meta),
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		newBalance := w.Balance.Sub(amount)
		if err := tx.Model(&models.Wallet{}).Where("id = ?", w.ID).Updates(map[string]any{
			"balance":         newBalance,
			"total_withdrawn": w.TotalWithdrawn.Add(amount),
		}).Error; err != nil {
			return err
		}

		resp = fiber.Map{
			"success":       true,
			"transactionId": trx.ID,
			"newBalance":    newBalance,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errInsufficientFunds) {
			return helpers.JSONError(c, fiber.StatusBadRequest, "Insufficient balance")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, fiber.StatusNotFound, "Wallet not found")
		}
		log.Println("❌ Withdrawal failed:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
