package superAdminController

import (
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// StoreList returns every store with headline per-store aggregates.
func StoreList(c *fiber.Ctx) error {
	db := database.Database.Db

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	db.Model(&models.Store{}).Where("is_deleted = false").Count(&total)

	var stores []models.Store
	if err := db.Where("is_deleted = false").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&stores).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch store list!", nil)
	}

	summaries := make([]fiber.Map, 0, len(stores))
	for _, store := range stores {
		var customers, machines, activeMatches int64
		db.Model(&models.Customer{}).Where("store_id = ? AND is_deleted = false", store.ID).Count(&customers)
		db.Model(&models.Machine{}).Where("store_id = ? AND is_deleted = false", store.ID).Count(&machines)
		db.Model(&models.MatchTransaction{}).
			Where("store_id = ? AND status = ?", store.ID, models.MatchStatusActive).Count(&activeMatches)

		summaries = append(summaries, fiber.Map{
			"store":         store,
			"customers":     customers,
			"machines":      machines,
			"activeMatches": activeMatches,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store list.", fiber.Map{
		"stores": summaries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ToggleStoreActive activates or deactivates a store. Deactivated stores are
// blocked at the store-context middleware for every member account.
func ToggleStoreActive(c *fiber.Ctx) error {
	storeId, err := c.ParamsInt("id")
	if err != nil || storeId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	db := database.Database.Db

	var store models.Store
	if err := db.Where("id = ? AND is_deleted = false", storeId).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	store.IsActive = !store.IsActive
	if err := db.Save(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update store!", nil)
	}

	message := "Store activated!"
	if !store.IsActive {
		message = "Store deactivated!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"storeId":  store.ID,
		"isActive": store.IsActive,
	})
}

// PlatformStats aggregates headline numbers across all stores.
func PlatformStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var stores, customers, machines, activeMatches int64
	db.Model(&models.Store{}).Where("is_deleted = false").Count(&stores)
	db.Model(&models.Customer{}).Where("is_deleted = false").Count(&customers)
	db.Model(&models.Machine{}).Where("is_deleted = false").Count(&machines)
	db.Model(&models.MatchTransaction{}).Where("status = ?", models.MatchStatusActive).Count(&activeMatches)

	var totals struct {
		TotalCash    float64
		TotalMatched float64
	}
	if err := db.Model(&models.MatchTransaction{}).
		Select("COALESCE(SUM(initial_amount), 0) AS total_cash, COALESCE(SUM(matched_amount), 0) AS total_matched").
		Scan(&totals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute platform stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Platform statistics.", fiber.Map{
		"stores":        stores,
		"customers":     customers,
		"machines":      machines,
		"activeMatches": activeMatches,
		"totalCash":     totals.TotalCash,
		"totalMatched":  totals.TotalMatched,
	})
}

// UserList returns platform accounts across stores, excluding super-admins.
func UserList(c *fiber.Ctx) error {
	db := database.Database.Db

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var users []models.User
	var total int64

	// Fetch user list excluding SUPER-ADMIN
	if err := db.
		Where("is_deleted = ? AND role != ?", false, models.RoleSuperAdmin).
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	db.Model(&models.User{}).
		Where("is_deleted = ? AND role != ?", false, models.RoleSuperAdmin).
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
