package middleware

import (
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// ResolveStoreContext resolves the acting user's store (tenant) and stores it
// in ctx Locals as "storeId". Every store-scoped write route runs behind it.
//
// Resolution order: fresh profile row first, then the token's storeId claim
// if the profile read fails. A zero store id means the account has no store
// configured; the request is aborted before any write can happen.
func ResolveStoreContext(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}

	storeId := uint(0)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err == nil {
		storeId = user.StoreID
		c.Locals("role", user.Role)
	} else if claimed, ok := c.Locals("tokenStoreId").(uint); ok {
		// Profile lookup failed; fall back to the session claim
		storeId = claimed
	}

	if storeId == 0 {
		return JsonResponse(c, fiber.StatusForbidden, false,
			"No store is configured for your account. Please complete store setup first!", nil)
	}

	var store models.Store
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", storeId).First(&store).Error; err != nil {
		return JsonResponse(c, fiber.StatusForbidden, false,
			"No store is configured for your account. Please complete store setup first!", nil)
	}
	if !store.IsActive {
		return JsonResponse(c, fiber.StatusForbidden, false, "This store has been deactivated. Contact support!", nil)
	}

	c.Locals("storeId", storeId)
	return c.Next()
}
