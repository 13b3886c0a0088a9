package machineValidator

import (
	"strings"

	machineController "github.com/Gameonesoft123/gameon-v2-sub001/controllers/machine"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// Machine validates create/update machine requests
func Machine() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(machineController.MachineRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Machine name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		c.Locals("validatedMachine", reqData)
		return c.Next()
	}
}

// MachineStatus validates a machine status change
func MachineStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(machineController.MachineStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch models.MachineStatus(reqData.Status) {
		case models.MachineStatusActive, models.MachineStatusMaintenance, models.MachineStatusRetired:
		default:
			errors["status"] = "Status must be one of active, maintenance, retired!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMachineStatus", reqData)
		return c.Next()
	}
}
