package machineRoutes

import (
	machineController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/machine"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	machineValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/machine"

	"github.com/gofiber/fiber/v2"
)

func SetupMachineRoutes(app *fiber.App) {
	machineGroup := app.Group("/machine")

	machineGroup.Post("/", machineValidator.Machine(), middleware.JWTMiddleware, middleware.ResolveStoreContext, machineController.CreateMachine)
	machineGroup.Get("/list", middleware.JWTMiddleware, middleware.ResolveStoreContext, machineController.ListMachines)
	machineGroup.Put("/:id", machineValidator.Machine(), middleware.JWTMiddleware, middleware.ResolveStoreContext, machineController.UpdateMachine)
	machineGroup.Patch("/:id/status", machineValidator.MachineStatus(), middleware.JWTMiddleware, middleware.ResolveStoreContext, machineController.SetMachineStatus)
	machineGroup.Delete("/:id", middleware.JWTMiddleware, middleware.ResolveStoreContext, machineController.DeleteMachine)
}
