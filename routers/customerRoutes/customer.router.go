package customerRoutes

import (
	customerController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/customer"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	customerValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/customer"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customer")

	customerGroup.Post("/", customerValidator.Customer(), middleware.JWTMiddleware, middleware.ResolveStoreContext, customerController.CreateCustomer)
	customerGroup.Get("/list", middleware.JWTMiddleware, middleware.ResolveStoreContext, customerController.ListCustomers)
	customerGroup.Get("/:id", middleware.JWTMiddleware, middleware.ResolveStoreContext, customerController.GetCustomer)
	customerGroup.Put("/:id", customerValidator.Customer(), middleware.JWTMiddleware, middleware.ResolveStoreContext, customerController.UpdateCustomer)
	customerGroup.Delete("/:id", middleware.JWTMiddleware, middleware.ResolveStoreContext, customerController.DeleteCustomer)
}
