package bonusRoutes

import (
	bonusController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/bonus"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	bonusValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/bonus"

	"github.com/gofiber/fiber/v2"
)

func SetupBonusRoutes(app *fiber.App) {
	bonusGroup := app.Group("/bonus")

	bonusGroup.Post("/add", bonusValidator.Bonus(), middleware.JWTMiddleware, middleware.ResolveStoreContext, bonusController.AddBonus)
	bonusGroup.Post("/redeem", bonusValidator.Bonus(), middleware.JWTMiddleware, middleware.ResolveStoreContext, bonusController.RedeemBonus)
	bonusGroup.Post("/adjust", bonusValidator.Adjust(), middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), bonusController.AdjustBonus)
	bonusGroup.Get("/history", middleware.JWTMiddleware, middleware.ResolveStoreContext, bonusController.BonusHistory)
}
