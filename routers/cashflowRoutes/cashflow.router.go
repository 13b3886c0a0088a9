package cashflowRoutes

import (
	cashflowController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/cashflow"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	cashflowValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/cashflow"

	"github.com/gofiber/fiber/v2"
)

func SetupCashflowRoutes(app *fiber.App) {
	cashGroup := app.Group("/cashflow")

	cashGroup.Post("/", cashflowValidator.CashLog(), middleware.JWTMiddleware, middleware.ResolveStoreContext, cashflowController.LogCash)
	cashGroup.Get("/list", middleware.JWTMiddleware, middleware.ResolveStoreContext, cashflowController.ListCash)
	cashGroup.Get("/daily-summary", middleware.JWTMiddleware, middleware.ResolveStoreContext, cashflowController.DailySummary)
}
