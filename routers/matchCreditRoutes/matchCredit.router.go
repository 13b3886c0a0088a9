package matchCreditRoutes

import (
	matchCreditController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/matchCredit"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	matchCreditValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/matchCredit"

	"github.com/gofiber/fiber/v2"
)

func SetupMatchCreditRoutes(app *fiber.App) {
	matchGroup := app.Group("/match-credit")

	matchGroup.Post("/", matchCreditValidator.CreateMatch(), middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.CreateMatch)
	matchGroup.Get("/daily-check", middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.DailyMatchCheck)
	matchGroup.Get("/list", middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.ListMatches)
	matchGroup.Post("/redeem", matchCreditValidator.MatchAction(), middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.RedeemMatch)
	matchGroup.Post("/void", matchCreditValidator.MatchAction(), middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.VoidMatch)
	matchGroup.Get("/stats", middleware.JWTMiddleware, middleware.ResolveStoreContext, matchCreditController.MatchStats)
}
