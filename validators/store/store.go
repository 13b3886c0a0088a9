package storeValidator

import (
	storeController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/store"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateStore validates a store profile edit
func UpdateStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(storeController.UpdateStoreRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedUpdateStore", reqData)
		return c.Next()
	}
}

// UpdateSettings validates a store settings edit
func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(storeController.UpdateSettingsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MatchRedemptionThreshold != nil && *reqData.MatchRedemptionThreshold < 0 {
			errors["matchRedemptionThreshold"] = "Threshold cannot be negative!"
		}
		if reqData.MatchExpiryDays != nil && *reqData.MatchExpiryDays < 0 {
			errors["matchExpiryDays"] = "Match expiry days cannot be negative!"
		}
		if reqData.Currency != "" && len(reqData.Currency) != 3 {
			errors["currency"] = "Currency must be a 3-letter code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateSettings", reqData)
		return c.Next()
	}
}
