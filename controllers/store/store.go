package storeController

import (
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// UpdateStoreRequest edits the store profile.
type UpdateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
}

// UpdateSettingsRequest edits the store's match credit configuration. The
// one-match-per-customer-per-day rule is fixed and has no setting.
type UpdateSettingsRequest struct {
	MatchRedemptionThreshold *float64 `json:"matchRedemptionThreshold"`
	MatchExpiryDays          *int     `json:"matchExpiryDays"`
	Currency                 string   `json:"currency"`
}

// GetStore returns the acting user's store profile.
func GetStore(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var store models.Store
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", storeId).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store fetched!", store)
}

// UpdateStore edits the store profile (owner only).
func UpdateStore(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedUpdateStore").(*UpdateStoreRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var store models.Store
	if err := db.Where("id = ? AND is_deleted = false", storeId).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	if reqData.Name != "" {
		store.Name = reqData.Name
	}
	store.Address = reqData.Address
	store.City = reqData.City
	store.State = reqData.State
	store.Phone = reqData.Phone

	if err := db.Save(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update store!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store updated!", store)
}

// GetSettings returns the store's configuration.
func GetSettings(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var setting models.StoreSetting
	if err := database.Database.Db.Where("store_id = ? AND is_deleted = false", storeId).First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store settings not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store settings fetched!", setting)
}

// UpdateSettings edits the store's configuration (owner only). Absent fields
// keep their current values.
func UpdateSettings(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedUpdateSettings").(*UpdateSettingsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var setting models.StoreSetting
	if err := db.Where("store_id = ? AND is_deleted = false", storeId).First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store settings not found!", nil)
	}

	if reqData.MatchRedemptionThreshold != nil {
		setting.MatchRedemptionThreshold = utils.Round2(*reqData.MatchRedemptionThreshold)
	}
	if reqData.MatchExpiryDays != nil {
		setting.MatchExpiryDays = *reqData.MatchExpiryDays
	}
	if reqData.Currency != "" {
		setting.Currency = reqData.Currency
	}

	if err := db.Save(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store settings updated!", setting)
}
