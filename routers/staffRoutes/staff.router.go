package staffRoutes

import (
	staffController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/staff"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	staffValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/staff"

	"github.com/gofiber/fiber/v2"
)

func SetupStaffRoutes(app *fiber.App) {
	staffGroup := app.Group("/staff")

	// Staff management is owner-only
	staffGroup.Post("/", staffValidator.CreateStaff(), middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), staffController.CreateStaff)
	staffGroup.Get("/list", middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), staffController.ListStaff)
	staffGroup.Patch("/:id/block", middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), staffController.BlockStaff)
	staffGroup.Delete("/:id", middleware.JWTMiddleware, middleware.ResolveStoreContext,
		middleware.RequireRole(models.RoleOwner), staffController.DeleteStaff)
}
