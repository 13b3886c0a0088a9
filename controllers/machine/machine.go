package machineController

import (
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// MachineRequest is the validated payload for creating/updating a machine.
type MachineRequest struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	Category     string `json:"category"`
}

// MachineStatusRequest changes a machine's operational status.
type MachineStatusRequest struct {
	Status string `json:"status"`
}

// CreateMachine adds a machine to the store floor.
func CreateMachine(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedMachine").(*MachineRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	machine := models.Machine{
		StoreID:      storeId,
		Name:         reqData.Name,
		SerialNumber: reqData.SerialNumber,
		Category:     reqData.Category,
		Status:       models.MachineStatusActive,
	}

	if err := database.Database.Db.Create(&machine).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create machine!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Machine created!", machine)
}

// ListMachines returns the store's machines, optionally filtered by status.
func ListMachines(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	db := database.Database.Db

	query := db.Model(&models.Machine{}).Where("store_id = ? AND is_deleted = false", storeId)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var machines []models.Machine
	if err := query.Order("name ASC").Find(&machines).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch machines!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Machines fetched!", fiber.Map{
		"machines": machines,
	})
}

// UpdateMachine edits a machine's details.
func UpdateMachine(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	machineId, err := c.ParamsInt("id")
	if err != nil || machineId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid machine id!", nil)
	}

	reqData, ok := c.Locals("validatedMachine").(*MachineRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var machine models.Machine
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", machineId, storeId).
		First(&machine).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Machine not found!", nil)
	}

	machine.Name = reqData.Name
	machine.SerialNumber = reqData.SerialNumber
	machine.Category = reqData.Category

	if err := db.Save(&machine).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update machine!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Machine updated!", machine)
}

// SetMachineStatus moves a machine between active/maintenance/retired.
func SetMachineStatus(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	machineId, err := c.ParamsInt("id")
	if err != nil || machineId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid machine id!", nil)
	}

	reqData, ok := c.Locals("validatedMachineStatus").(*MachineStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	result := db.Model(&models.Machine{}).
		Where("id = ? AND store_id = ? AND is_deleted = false", machineId, storeId).
		Update("status", reqData.Status)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update machine status!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Machine not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Machine status updated!", fiber.Map{
		"machineId": machineId,
		"status":    reqData.Status,
	})
}

// DeleteMachine soft deletes a machine.
func DeleteMachine(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	machineId, err := c.ParamsInt("id")
	if err != nil || machineId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid machine id!", nil)
	}

	result := database.Database.Db.Model(&models.Machine{}).
		Where("id = ? AND store_id = ? AND is_deleted = false", machineId, storeId).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete machine!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Machine not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Machine deleted!", nil)
}
