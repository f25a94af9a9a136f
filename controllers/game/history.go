package game

import (
	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
)

const historyLimit = 50

func BetHistory(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var bets []models.Bet
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Limit(historyLimit).
		Find(&bets).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return helpers.JSONSuccess(c, fiber.Map{"bets": bets})
}
