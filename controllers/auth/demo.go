package auth

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type DemoAuthRequest struct {
	Email        string `json:"email"`
	Action       string `json:"action"`
	SessionToken string `json:"session_token"`
}

// DemoAuth issues and validates demo sessions. Login finds or creates the
// demo account with its starting-balance wallet; validate resolves a token
// back to the account it belongs to.
func DemoAuth(c *fiber.Ctx) error {
	var req DemoAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid request")
	}

	switch req.Action {
	case "login":
		return demoLogin(c, strings.ToLower(strings.TrimSpace(req.Email)))
	case "validate":
		return demoValidate(c, req.SessionToken)
	default:
		return helpers.JSONError(c, fiber.StatusBadRequest, "Unknown action")
	}
}

func demoLogin(c *fiber.Ctx, email string) error {
	if email == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Email is required")
	}

	var session models.Session

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				Email:    email,
				Name:     strings.SplitN(email, "@", 2)[0],
				IsDemo:   true,
				IsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			wallet := models.Wallet{UserID: user.ID, Balance: demoStartBalance()}
			if err := tx.Create(&wallet).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		session = models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(sessionTTL)}
		return tx.Create(&session).Error
	})
	if err != nil {
		log.Println("❌ Demo login failed:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"session_token": session.Token,
		"message":       "Demo session created successfully",
	})
}

func demoValidate(c *fiber.Ctx, token string) error {
	if token == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Session token is required")
	}

	var session models.Session
	if err := database.DB.Preload("User").
		Where("token = ? AND expires_at > ?", strings.ToLower(token), time.Now()).
		First(&session).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "Invalid or expired session")
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"account": fiber.Map{
			"email":   session.User.Email,
			"name":    session.User.Name,
			"is_demo": session.User.IsDemo,
		},
		"message": "Session is valid",
	})
}

func demoStartBalance() decimal.Decimal {
	if v := os.Getenv("DEMO_START_BALANCE"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.Cmp(decimal.Zero) >= 0 {
			return d
		}
	}
	return decimal.NewFromInt(100)
}
