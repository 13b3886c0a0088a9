package authRoutes

import (
	authController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/auth"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	authValidator "github.com/Gameonesoft123/gameon-v2-sub001/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/change-password", authValidator.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
}
