package helpers

import (
	"github.com/gofiber/fiber/v2"
)

// JSONError answers a failed request with the flat error envelope the web
// client expects: any non-200 status means no money was moved.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func JSONSuccess(c *fiber.Ctx, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["success"] = true
	return c.Status(fiber.StatusOK).JSON(data)
}
