package admin

import (
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

type LevelInput struct {
	Level      int     `json:"level"`
	Multiplier float64 `json:"multiplier"`
	WinChance  float64 `json:"win_chance"`
}

type UpdateSettingsRequest struct {
	Levels []LevelInput `json:"levels"`
}

func GetSettings(c *fiber.Ctx) error {
	var levels []models.BetLevel
	if err := database.DB.Order("level asc").Find(&levels).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
	return helpers.JSONSuccess(c, fiber.Map{"levels": levels})
}

// UpdateSettings replaces the tier table in one transaction. The ordering
// invariant is checked on the incoming set before anything is written, so a
// bad payload can never leave a half-applied tier table behind.
func UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "Invalid settings payload")
	}

	incoming := make([]models.BetLevel, 0, len(req.Levels))
	keep := make([]int, 0, len(req.Levels))
	for _, l := range req.Levels {
		incoming = append(incoming, models.BetLevel{
			Level:      l.Level,
			Multiplier: decimal.NewFromFloat(l.Multiplier),
			WinChance:  decimal.NewFromFloat(l.WinChance),
		})
		keep = append(keep, l.Level)
	}

	if err := services.ValidateLevels(incoming); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Removal must be hard: a soft-deleted row would keep occupying the
		// level unique index and block the tier from ever coming back.
		if err := tx.Unscoped().Where("level NOT IN ?", keep).Delete(&models.BetLevel{}).Error; err != nil {
			return err
		}
		for _, l := range incoming {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "level"}},
				DoUpdates: clause.AssignmentColumns([]string{"multiplier", "win_chance", "updated_at", "deleted_at"}),
			}).Create(&l).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("❌ Failed to update bet levels:", err)
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return helpers.JSONSuccess(c, fiber.Map{"message": "Settings updated"})
}
