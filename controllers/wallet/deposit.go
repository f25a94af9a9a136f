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

var validate = validator.New()

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=10"`
}

// Deposit credits the wallet through a simulated PIX payment. The transaction
// row and the balance bump commit together; in production the completed
// status would only be set by the payment provider's confirmation.
func Deposit(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid deposit parameters")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Minimum deposit is R$ 10.00")
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)
	externalID := fmt.Sprintf("PIX_%d_%s", time.Now().UnixMilli(), strings.Split(uuid.New().String(), "-")[0])

	meta, _ := json.Marshal(fiber.Map{
		"provider": "pix-simulated",
		"paid_at":  time.Now().UTC().Format(time.RFC3339),
	})

	var resp fiber.Map

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var w models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", user.ID).First(&w).Error; err != nil {
			return err
		}

		trx := models.Transaction{
			UserID:     user.ID,
			Type:       models.TrxTypeDeposit,
			Amount:     amount,
			Status:     models.TrxStatusCompleted,
			ExternalID: externalID,
			Meta:       datatypes.JSON(meta),
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		newBalance := w.Balance.Add(amount)
		if err := tx.Model(&models.Wallet{}).Where("id = ?", w.ID).Updates(map[string]any{
			"balance":         newBalance,
			"total_deposited": w.TotalDeposited.Add(amount),
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, fiber.StatusNotFound, "Wallet not found")
		}
		log.Println("❌ Deposit failed:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
