package bonusController

import (
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// BonusRequest is the validated payload for a bonus ledger entry.
type BonusRequest struct {
	CustomerID uint    `json:"customerId"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
}

// AddBonus credits bonus balance to a customer. The ledger row and the
// balance update commit together.
func AddBonus(c *fiber.Ctx) error {
	return applyBonus(c, models.BonusTypeEarn)
}

// RedeemBonus debits bonus balance from a customer; rejects redemptions
// beyond the current balance.
func RedeemBonus(c *fiber.Ctx) error {
	return applyBonus(c, models.BonusTypeRedeem)
}

// AdjustBonus applies an owner correction. The amount is signed; the balance
// may not go negative.
func AdjustBonus(c *fiber.Ctx) error {
	return applyBonus(c, models.BonusTypeAdjust)
}

func applyBonus(c *fiber.Ctx, entryType models.BonusType) error {
	storeId := c.Locals("storeId").(uint)
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBonus").(*BonusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var customer models.Customer
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", reqData.CustomerID, storeId).
		First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	amount := utils.Round2(reqData.Amount)
	balanceBefore := customer.BonusBalance

	var balanceAfter float64
	switch entryType {
	case models.BonusTypeRedeem:
		if amount > balanceBefore {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Insufficient bonus balance!", nil)
		}
		balanceAfter = utils.Round2(balanceBefore - amount)
	case models.BonusTypeAdjust:
		balanceAfter = utils.Round2(balanceBefore + amount)
		if balanceAfter < 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Adjustment would make the balance negative!", nil)
		}
	default:
		balanceAfter = utils.Round2(balanceBefore + amount)
	}

	entry := models.BonusTransaction{
		StoreID:       storeId,
		CustomerID:    customer.ID,
		CreatedByID:   &userId,
		Type:          entryType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Reason:        reqData.Reason,
		EntryDate:     time.Now(),
	}

	// Start transaction
	tx := db.Begin()

	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create bonus entry!", nil)
	}

	customer.BonusBalance = balanceAfter
	if err := tx.Save(&customer).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update bonus balance!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bonus entry recorded!", fiber.Map{
		"entryId":       entry.ID,
		"customerId":    customer.ID,
		"type":          entry.Type,
		"amount":        amount,
		"balanceBefore": balanceBefore,
		"balanceAfter":  balanceAfter,
	})
}

// BonusHistory returns a customer's bonus ledger, newest first.
func BonusHistory(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	db := database.Database.Db

	customerId := c.QueryInt("customerId", 0)
	if customerId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "customerId is required!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var customer models.Customer
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", customerId, storeId).
		First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	query := db.Model(&models.BonusTransaction{}).
		Where("store_id = ? AND customer_id = ? AND is_deleted = false", storeId, customerId)

	var total int64
	query.Count(&total)

	entries := make([]models.BonusTransaction, 0)
	if err := query.Order("entry_date DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bonus history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bonus history fetched!", fiber.Map{
		"entries":        entries,
		"currentBalance": customer.BonusBalance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
