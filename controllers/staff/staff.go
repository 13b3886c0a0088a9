package staffController

import (
	"log"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// CreateStaffRequest registers a staff account at the owner's store.
type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// CreateStaff registers a STAFF user bound to the owner's store.
func CreateStaff(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedCreateStaff").(*CreateStaffRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	staff := models.User{
		StoreID:  storeId,
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Role:     models.RoleStaff,
		Password: string(hashedPassword),
	}

	if err := db.Create(&staff).Error; err != nil {
		log.Printf("Error saving staff to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create staff account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Staff account created!", fiber.Map{
		"userId": staff.ID,
		"name":   staff.Name,
		"email":  staff.Email,
		"role":   staff.Role,
	})
}

// ListStaff returns the store's staff and owner accounts.
func ListStaff(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	var staff []models.User
	if err := database.Database.Db.
		Where("store_id = ? AND is_deleted = false", storeId).
		Order("created_at ASC").
		Find(&staff).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch staff!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff fetched!", fiber.Map{
		"staff": staff,
	})
}

// BlockStaff toggles a staff account's blocked flag. Owners cannot block
// themselves.
func BlockStaff(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	userId := c.Locals("userId").(uint)

	staffId, err := c.ParamsInt("id")
	if err != nil || staffId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid staff id!", nil)
	}
	if uint(staffId) == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot block your own account!", nil)
	}

	db := database.Database.Db

	var staff models.User
	if err := db.Where("id = ? AND store_id = ? AND role = ? AND is_deleted = false",
		staffId, storeId, models.RoleStaff).First(&staff).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Staff account not found!", nil)
	}

	staff.IsBlocked = !staff.IsBlocked
	if err := db.Save(&staff).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update staff account!", nil)
	}

	message := "Staff account unblocked!"
	if staff.IsBlocked {
		message = "Staff account blocked!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"userId":    staff.ID,
		"isBlocked": staff.IsBlocked,
	})
}

// DeleteStaff soft deletes a staff account.
func DeleteStaff(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	userId := c.Locals("userId").(uint)

	staffId, err := c.ParamsInt("id")
	if err != nil || staffId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid staff id!", nil)
	}
	if uint(staffId) == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	result := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND store_id = ? AND role = ? AND is_deleted = false", staffId, storeId, models.RoleStaff).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete staff account!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Staff account not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Staff account deleted!", nil)
}
