package middlewares

import (
	"crypto/subtle"
	"os"

	"caracoroa/helpers"

	"github.com/gofiber/fiber/v2"
)

func AdminAuth() fiber.Handler {
	expectedKey := os.Getenv("ADMIN_API_KEY")

	return func(c *fiber.Ctx) error {
		key := c.Get("X-Admin-Key")
		if expectedKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expectedKey)) != 1 {
			return helpers.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}
