package routes

import (
	"caracoroa/controllers/admin"
	"caracoroa/controllers/auth"
	"caracoroa/controllers/game"
	"caracoroa/controllers/wallet"
	"caracoroa/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/demo", auth.DemoAuth)

	gameroutes := app.Group("/game", middlewares.UserAuth)
	gameroutes.Post("/bet", game.PlaceBet)
	gameroutes.Get("/bets", game.BetHistory)

	walletroutes := app.Group("/wallet", middlewares.UserAuth)
	walletroutes.Get("/", wallet.Balance)
	walletroutes.Post("/deposit", wallet.Deposit)
	walletroutes.Post("/withdraw", wallet.Withdraw)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Get("/settings", admin.GetSettings)
	adminroutes.Put("/settings", admin.UpdateSettings)
	adminroutes.Get("/reports", admin.Reports)
	adminroutes.Get("/withdrawals", admin.ListPendingWithdrawals)
	adminroutes.Post("/withdrawals/:id/approve", admin.ApproveWithdrawal)
	adminroutes.Post("/withdrawals/:id/reject", admin.RejectWithdrawal)
}
