package admin

import (
	"caracoroa/database"
	"caracoroa/helpers"
	"caracoroa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type betTotals struct {
	Count   int64           `json:"count"`
	Wagered decimal.Decimal `json:"wagered"`
	PaidOut decimal.Decimal `json:"paid_out"`
}

// Reports aggregates lifetime platform totals for the admin dashboard.
func Reports(c *fiber.Ctx) error {
	var bets betTotals
	if err := database.DB.Model(&models.Bet{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS wagered, COALESCE(SUM(payout), 0) AS paid_out").
		Scan(&bets).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	deposits, err := sumTransactions(models.TrxTypeDeposit, models.TrxStatusCompleted)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
	withdrawalsPending, err := sumTransactions(models.TrxTypeWithdrawal, models.TrxStatusPending)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}
	withdrawalsDone, err := sumTransactions(models.TrxTypeWithdrawal, models.TrxStatusCompleted)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "Storage unavailable")
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"bets":                 bets.Count,
		"totalWagered":         bets.Wagered,
		"totalPaidOut":         bets.PaidOut,
		"houseResult":          bets.Wagered.Sub(bets.PaidOut),
		"totalDeposited":       deposits,
		"withdrawalsPending":   withdrawalsPending,
		"withdrawalsCompleted": withdrawalsDone,
	})
}

func sumTransactions(trxType, status string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := database.DB.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", trxType, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
