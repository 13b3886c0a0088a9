package matchCreditValidator

import (
	matchCreditController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/matchCredit"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateMatch validates a match credit creation request
func CreateMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(matchCreditController.CreateMatchRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customerId"] = "Customer is required!"
		}
		if reqData.MachineID == 0 {
			errors["machineId"] = "Machine is required!"
		}
		if reqData.InitialAmount <= 0 {
			errors["initialAmount"] = "Initial amount must be greater than 0!"
		}
		if reqData.MatchPercentage == nil {
			// Default match is a full 100% of the deposit
			defaultPercentage := 100.0
			reqData.MatchPercentage = &defaultPercentage
		} else if *reqData.MatchPercentage <= 0 {
			errors["matchPercentage"] = "Match percentage must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.InitialAmount = utils.Round2(reqData.InitialAmount)

		c.Locals("validatedCreateMatch", reqData)
		return c.Next()
	}
}

// MatchAction validates a redeem/void request
func MatchAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(matchCreditController.MatchActionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TransactionID == 0 {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMatchAction", reqData)
		return c.Next()
	}
}
