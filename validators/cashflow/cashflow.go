package cashflowValidator

import (
	cashflowController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/cashflow"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// CashLog validates a cash movement entry
func CashLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(cashflowController.CashLogRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch models.CashDirection(reqData.Direction) {
		case models.CashDirectionIn, models.CashDirectionOut:
		default:
			errors["direction"] = "Direction must be IN or OUT!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Category != "" {
			switch reqData.Category {
			case models.CashCategoryCollection, models.CashCategoryRefill,
				models.CashCategoryPayout, models.CashCategoryExpense, models.CashCategoryOther:
			default:
				errors["category"] = "Unknown cash category!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCashLog", reqData)
		return c.Next()
	}
}
