package customerController

import (
	"strings"

	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// CustomerRequest is the validated payload for creating/updating a customer.
type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

// CreateCustomer registers a customer at the acting user's store.
func CreateCustomer(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedCustomer").(*CustomerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Same mobile registered twice at one store is almost always a re-entry
	if reqData.Mobile != "" {
		var existing models.Customer
		if err := db.Where("store_id = ? AND mobile = ? AND is_deleted = false", storeId, reqData.Mobile).
			First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A customer with this mobile already exists!", nil)
		}
	}

	customer := models.Customer{
		StoreID:   storeId,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Mobile:    reqData.Mobile,
		Email:     reqData.Email,
		Notes:     reqData.Notes,
	}

	if err := db.Create(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create customer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Customer created!", customer)
}

// ListCustomers returns the store's customers with optional name search.
func ListCustomers(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
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

	query := db.Model(&models.Customer{}).Where("store_id = ? AND is_deleted = false", storeId)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(first_name || ' ' || last_name) LIKE ? OR mobile LIKE ?", pattern, "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var customers []models.Customer
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch customers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched!", fiber.Map{
		"customers": customers,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCustomer returns a single customer by id.
func GetCustomer(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	customerId, err := c.ParamsInt("id")
	if err != nil || customerId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid customer id!", nil)
	}

	var customer models.Customer
	if err := database.Database.Db.
		Where("id = ? AND store_id = ? AND is_deleted = false", customerId, storeId).
		First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer fetched!", customer)
}

// UpdateCustomer edits a customer's details.
func UpdateCustomer(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	customerId, err := c.ParamsInt("id")
	if err != nil || customerId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid customer id!", nil)
	}

	reqData, ok := c.Locals("validatedCustomer").(*CustomerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var customer models.Customer
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", customerId, storeId).
		First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	customer.FirstName = reqData.FirstName
	customer.LastName = reqData.LastName
	customer.Mobile = reqData.Mobile
	customer.Email = reqData.Email
	customer.Notes = reqData.Notes

	if err := db.Save(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update customer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer updated!", customer)
}

// DeleteCustomer soft deletes a customer.
func DeleteCustomer(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	customerId, err := c.ParamsInt("id")
	if err != nil || customerId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid customer id!", nil)
	}

	db := database.Database.Db

	result := db.Model(&models.Customer{}).
		Where("id = ? AND store_id = ? AND is_deleted = false", customerId, storeId).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete customer!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer deleted!", nil)
}
