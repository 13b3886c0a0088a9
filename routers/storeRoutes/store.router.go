package storeRoutes

import (
	storeController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/store"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	storeValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/store"

	"github.com/gofiber/fiber/v2"
)

func SetupStoreRoutes(app *fiber.App) {
	storeGroup := app.Group("/store")

	storeGroup.Get("/", middleware.JWTMiddleware, middleware.ResolveStoreContext, storeController.GetStore)
	storeGroup.Put("/", storeValidator.UpdateStore(), middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), storeController.UpdateStore)
	storeGroup.Get("/settings", middleware.JWTMiddleware, middleware.ResolveStoreContext, storeController.GetSettings)
	storeGroup.Put("/settings", storeValidator.UpdateSettings(), middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), storeController.UpdateSettings)
}
