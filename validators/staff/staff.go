package staffValidator

import (
	"strings"

	staffController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/staff"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateStaff validates a staff registration
func CreateStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(staffController.CreateStaffRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		c.Locals("validatedCreateStaff", reqData)
		return c.Next()
	}
}
