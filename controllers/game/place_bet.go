package game

import (
	"errors"
	"log"

	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"
	"caracoroa/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceBetRequest struct {
	Choice string  `json:"choice"`
	Amount float64 `json:"amount"`
	Level  int     `json:"level"`
}

// PlaceBet settles one wager: validate, lock the wallet row, draw, then write
// the bet row and the new balance in the same transaction. Every failure path
// before Commit leaves both the balance and the bet ledger untouched.
func PlaceBet(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid bet parameters")
	}

	// Cheap rejections first, before the tier table is even read.
	if req.Amount <= 0 {
		return settlementError(c, services.ErrInvalidAmount)
	}
	if req.Choice != models.ChoiceCara && req.Choice != models.ChoiceCoroa {
		return settlementError(c, services.ErrInvalidChoice)
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)

	// Snapshot of tiers and minimum stake; admin edits mid-request are not
	// observed by this settlement.
	cfg, err := services.LoadGameConfig(database.DB)
	if err != nil {
		log.Println("❌ Failed to load game config:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	tier, err := cfg.ValidateWager(req.Choice, amount, req.Level)
	if err != nil {
		return settlementError(c, err)
	}

	var resp fiber.Map

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", user.ID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrWalletNotFound
			}
			return err
		}

		if err := services.EnsureFunds(wallet.Balance, amount); err != nil {
			return err
		}

		draw := services.NewDraw()
		outcome := services.Settle(req.Choice, amount, tier, draw)
		newBalance := wallet.Balance.Add(outcome.Payout).Sub(amount)

		bet := models.Bet{
			UserID: user.ID,
			Amount: amount,
			Choice: req.Choice,
			Level:  tier.Level,
			Result: outcome.Result,
			Won:    outcome.Won,
			Payout: outcome.Payout,
			Seed:   draw.Seed,
		}
		if err := tx.Create(&bet).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
			Update("balance", newBalance).Error; err != nil {
			return err
		}

		resp = fiber.Map{
			"success":    true,
			"result":     outcome.Result,
			"won":        outcome.Won,
			"payout":     outcome.Payout,
			"newBalance": newBalance,
		}
		return nil
	})
	if err != nil {
		return settlementError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func settlementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid bet amount")
	case errors.Is(err, services.ErrInvalidTier):
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid bet level")
	case errors.Is(err, services.ErrInvalidChoice):
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid choice")
	case errors.Is(err, services.ErrWalletNotFound):
		return helpers.JSONError(c, fiber.StatusNotFound, "Wallet not found")
	case errors.Is(err, services.ErrInsufficientBalance):
		return helpers.JSONError(c, fiber.StatusBadRequest, "Insufficient balance")
	default:
		log.Println("❌ Settlement failed:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
}
