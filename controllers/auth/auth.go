package authController

import (
	"log"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	loginBlockTime  = 15 * time.Minute
)

// SignupRequest registers a store owner together with their store.
type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Password  string `json:"password"`
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// LoginRequest authenticates a staff/owner account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest updates the acting user's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Signup registers a store owner: the user, the store and its default
// settings are created in one transaction so a partial signup never leaves a
// store without an owner.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if mobile already exists
	if reqData.Mobile != "" {
		if err := db.Where("mobile = ? AND is_deleted = false", reqData.Mobile).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mobile number is already registered!", nil)
		}
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	store := models.Store{
		Name:    reqData.StoreName,
		Code:    uuid.NewString(),
		Address: reqData.Address,
		City:    reqData.City,
		State:   reqData.State,
		Phone:   reqData.Mobile,
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Role:     models.RoleOwner,
		Password: string(hashedPassword),
	}

	tx := db.Begin()

	if err := tx.Create(&store).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating store: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register store!", nil)
	}

	if err := tx.Create(&models.StoreSetting{StoreID: store.ID, MatchExpiryDays: 30}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating store settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register store!", nil)
	}

	newUser.StoreID = store.ID
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Store registered successfully.", fiber.Map{
		"userId":    newUser.ID,
		"storeId":   store.ID,
		"storeCode": store.Code,
		"name":      newUser.Name,
		"email":     newUser.Email,
		"role":      newUser.Role,
	})
}

// Login verifies credentials, applies the failed-attempt lockout and issues
// a JWT carrying userId, storeId and role.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	now := time.Now()

	if user.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account has been blocked. Contact support!", nil)
	}
	if user.BlockedUntil != nil && user.BlockedUntil.After(now) {
		recordLogin(c, user.ID, false)
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Too many failed attempts. Try again later!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		user.FailedLoginAttempts++
		user.LastFailedLogin = &now
		if user.FailedLoginAttempts >= maxFailedLogins {
			blockedUntil := now.Add(loginBlockTime)
			user.BlockedUntil = &blockedUntil
			user.FailedLoginAttempts = 0
		}
		db.Save(&user)
		recordLogin(c, user.ID, false)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	// Successful login resets the counters
	user.FailedLoginAttempts = 0
	user.BlockedUntil = nil
	user.LastLogin = now
	db.Save(&user)
	recordLogin(c, user.ID, true)

	token, err := middleware.GenerateJWT(user.ID, user.StoreID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":   token,
		"userId":  user.ID,
		"storeId": user.StoreID,
		"name":    user.Name,
		"role":    user.Role,
	})
}

// recordLogin writes a LoginTracking audit row
func recordLogin(c *fiber.Ctx, userID uint, success bool) {
	tracking := models.LoginTracking{
		UserID:    userID,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Success:   success,
		Timestamp: time.Now(),
	}
	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording login attempt: %v", err)
	}
}

// ChangePassword updates the acting user's password after verifying the old one.
func ChangePassword(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedChangePassword").(*ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Old password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}
