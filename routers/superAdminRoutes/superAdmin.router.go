package superAdminRoutes

import (
	superAdminController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/superAdmin"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/store/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), superAdminController.StoreList)
	adminGroup.Patch("/store/:id/toggle-active", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), superAdminController.ToggleStoreActive)
	adminGroup.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), superAdminController.PlatformStats)
	adminGroup.Get("/user/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), superAdminController.UserList)
}
