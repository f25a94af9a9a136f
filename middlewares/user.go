package middlewares

import (
	"strings"
	"time"

	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
)

// UserAuth resolves the bearer session token to a user. The settlement path
// never trusts a caller-supplied user id; whatever account the token maps to
// is the account that gets debited.
func UserAuth(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == "" || token == auth {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var session models.Session
	if err := database.DB.Preload("User").
		Where("token = ? AND expires_at > ?", strings.ToLower(token), time.Now()).
		First(&session).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if !session.User.IsActive {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	c.Locals("user", session.User)
	return c.Next()
}
