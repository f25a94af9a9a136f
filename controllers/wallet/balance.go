package wallet

import (
	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
)

func Balance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var w models.Wallet
	if err := database.DB.Where("user_id = ?", user.ID).First(&w).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusNotFound, "Wallet not found")
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"balance":        w.Balance,
		"totalDeposited": w.TotalDeposited,
		"totalWithdrawn": w.TotalWithdrawn,
	})
}
