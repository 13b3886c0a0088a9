package bonusValidator

import (
	"strings"

	bonusController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/bonus"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// Bonus validates add/redeem bonus requests
func Bonus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(bonusController.BonusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customerId"] = "Customer is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBonus", reqData)
		return c.Next()
	}
}

// Adjust validates a signed balance correction
func Adjust() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(bonusController.BonusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customerId"] = "Customer is required!"
		}
		if reqData.Amount == 0 {
			errors["amount"] = "Amount cannot be 0!"
		}
		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "A reason is required for adjustments!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBonus", reqData)
		return c.Next()
	}
}
