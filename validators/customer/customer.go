package customerValidator

import (
	"strings"

	customerController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/customer"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// Customer validates create/update customer requests
func Customer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(customerController.CustomerRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if reqData.Email != "" && !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.FirstName = strings.TrimSpace(reqData.FirstName)
		reqData.LastName = strings.TrimSpace(reqData.LastName)

		c.Locals("validatedCustomer", reqData)
		return c.Next()
	}
}
