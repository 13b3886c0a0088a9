package matchCreditController

import (
	"strings"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMatch creates a match credit transaction for a customer deposit.
// The daily one-match-per-customer rule is checked up front for a friendly
// error, and enforced by the unique (customer_id, match_day) index so two
// racing submissions cannot both insert.
func CreateMatch(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCreateMatch").(*CreateMatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Customer and machine must belong to the acting user's store
	var customer models.Customer
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", reqData.CustomerID, storeId).
		First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	var machine models.Machine
	if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", reqData.MachineID, storeId).
		First(&machine).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Machine not found!", nil)
	}

	var setting models.StoreSetting
	if err := db.Where("store_id = ? AND is_deleted = false", storeId).First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load store settings!", nil)
		}
		// No settings row: defaults apply (threshold unset)
		setting = models.StoreSetting{}
	}

	// Pre-submission check: one match per customer per calendar day
	matchDay := time.Now().Format(models.MatchDayFormat)
	var existing int64
	db.Model(&models.MatchTransaction{}).
		Where("customer_id = ? AND match_day = ?", reqData.CustomerID, matchDay).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"This customer already has a match credit today!", nil)
	}

	matchPercentage := *reqData.MatchPercentage
	matchedAmount, totalCredits := ComputeMatchAmounts(reqData.InitialAmount, matchPercentage)
	threshold := ResolveThreshold(setting.MatchRedemptionThreshold, totalCredits)

	transaction := models.MatchTransaction{
		StoreID:             storeId,
		CustomerID:          reqData.CustomerID,
		MachineID:           reqData.MachineID,
		CreatedByID:         &userId,
		ReceiptNumber:       uuid.NewString(),
		InitialAmount:       utils.Round2(reqData.InitialAmount),
		MatchPercentage:     matchPercentage,
		MatchedAmount:       matchedAmount,
		TotalCredits:        totalCredits,
		RedemptionThreshold: threshold,
		Status:              models.MatchStatusActive,
		Notes:               reqData.Notes,
		MatchDay:            matchDay,
	}

	if err := db.Create(&transaction).Error; err != nil {
		// A racing submission for the same customer can hit the unique
		// (customer_id, match_day) index; report it like the pre-check
		if isDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false,
				"This customer already has a match credit today!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create match credit!", nil)
	}

	// Best-effort receipt, never blocks the response
	if customer.Mobile != "" {
		go utils.SendMatchReceiptSMS(customer.Mobile, customer.FullName(),
			transaction.TotalCredits, transaction.RedemptionThreshold, transaction.ReceiptNumber)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Match credit created!", fiber.Map{
		"transactionId":       transaction.ID,
		"receiptNumber":       transaction.ReceiptNumber,
		"customerId":          transaction.CustomerID,
		"machineId":           transaction.MachineID,
		"initialAmount":       transaction.InitialAmount,
		"matchPercentage":     transaction.MatchPercentage,
		"matchedAmount":       transaction.MatchedAmount,
		"totalCredits":        transaction.TotalCredits,
		"redemptionThreshold": transaction.RedemptionThreshold,
		"status":              transaction.Status,
	})
}

// isDuplicateKeyError detects a unique-constraint violation across the
// postgres and sqlite drivers
func isDuplicateKeyError(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}

// DailyMatchCheck reports whether a customer already has a match credit
// today. The submission form uses it to disable the submit button before the
// user fills everything in.
func DailyMatchCheck(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)

	customerId := c.QueryInt("customerId", 0)
	if customerId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "customerId is required!", nil)
	}

	matchDay := time.Now().Format(models.MatchDayFormat)

	var existing models.MatchTransaction
	err := database.Database.Db.
		Where("store_id = ? AND customer_id = ? AND match_day = ?", storeId, customerId, matchDay).
		First(&existing).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No match credit today.", fiber.Map{
				"hasMatchToday": false,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check daily match!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer already has a match credit today.", fiber.Map{
		"hasMatchToday": true,
		"transactionId": existing.ID,
		"status":        existing.Status,
		"createdAt":     existing.CreatedAt,
	})
}

// ListMatches returns the store's match transactions, newest first, filtered
// by status (single value or comma list), date bucket (all/today/week/month)
// and customer-name substring.
func ListMatches(c *fiber.Ctx) error {
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

	query := db.Model(&models.MatchTransaction{}).
		Where("match_transactions.store_id = ?", storeId)

	if status := c.Query("status"); status != "" {
		statuses := strings.Split(status, ",")
		for i := range statuses {
			statuses[i] = strings.TrimSpace(statuses[i])
		}
		query = query.Where("match_transactions.status IN ?", statuses)
	}

	if bucket := c.Query("range", utils.RangeAll); bucket != utils.RangeAll {
		if start, end, ok := utils.BucketRange(bucket, time.Now()); ok {
			query = query.Where("match_transactions.created_at BETWEEN ? AND ?", start, end)
		}
	}

	if name := strings.TrimSpace(c.Query("customer")); name != "" {
		// Case-insensitive substring over first, last and combined name
		pattern := "%" + strings.ToLower(name) + "%"
		query = query.
			Joins("JOIN customers ON customers.id = match_transactions.customer_id").
			Where("LOWER(customers.first_name || ' ' || customers.last_name) LIKE ?", pattern)
	}

	var total int64
	query.Count(&total)

	transactions := make([]models.MatchTransaction, 0)
	if err := query.
		Preload("Customer").
		Preload("Machine").
		Preload("CreatedBy").
		Order("match_transactions.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch match credits!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Match credits fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// RedeemMatch transitions an active match credit to redeemed and stamps
// redeemed_at. The update is guarded on the current status so a racing
// redeem/void can apply at most once.
func RedeemMatch(c *fiber.Ctx) error {
	return transitionMatch(c, models.MatchStatusRedeemed)
}

// VoidMatch transitions an active match credit to voided. redeemed_at stays
// unset.
func VoidMatch(c *fiber.Ctx) error {
	return transitionMatch(c, models.MatchStatusVoided)
}

func transitionMatch(c *fiber.Ctx, target models.MatchStatus) error {
	storeId := c.Locals("storeId").(uint)

	reqData, ok := c.Locals("validatedMatchAction").(*MatchActionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	updates := map[string]interface{}{"status": target}
	if target == models.MatchStatusRedeemed {
		updates["redeemed_at"] = now
	}

	result := db.Model(&models.MatchTransaction{}).
		Where("id = ? AND store_id = ? AND status = ?", reqData.TransactionID, storeId, models.MatchStatusActive).
		Updates(updates)

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update match credit!", nil)
	}

	if result.RowsAffected == 0 {
		// Distinguish missing from already-finalized
		var existing models.MatchTransaction
		if err := db.Where("id = ? AND store_id = ?", reqData.TransactionID, storeId).
			First(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Match credit not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Match credit is already "+string(existing.Status)+"!", nil)
	}

	if target == models.MatchStatusRedeemed {
		var transaction models.MatchTransaction
		if err := db.Preload("Customer").
			Where("id = ?", reqData.TransactionID).First(&transaction).Error; err == nil &&
			transaction.Customer.Mobile != "" {
			go utils.SendMatchRedeemedSMS(transaction.Customer.Mobile,
				transaction.Customer.FullName(), transaction.TotalCredits)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Match credit "+string(target)+"!", fiber.Map{
		"transactionId": reqData.TransactionID,
		"status":        target,
	})
}

// MatchStats aggregates the store's match credit totals: cash deposited,
// matched amount, combined credits and the active-match count. An optional
// date bucket narrows all aggregates.
func MatchStats(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	db := database.Database.Db

	base := db.Model(&models.MatchTransaction{}).Where("store_id = ?", storeId)

	if bucket := c.Query("range", utils.RangeAll); bucket != utils.RangeAll {
		if start, end, ok := utils.BucketRange(bucket, time.Now()); ok {
			base = base.Where("created_at BETWEEN ? AND ?", start, end)
		}
	}

	var totals struct {
		TotalCash    float64
		TotalMatched float64
		TotalCredits float64
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(initial_amount), 0) AS total_cash, " +
			"COALESCE(SUM(matched_amount), 0) AS total_matched, " +
			"COALESCE(SUM(total_credits), 0) AS total_credits").
		Scan(&totals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute statistics!", nil)
	}

	var activeMatches int64
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", models.MatchStatusActive).
		Count(&activeMatches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute statistics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Match statistics fetched!", fiber.Map{
		"totalCash":     utils.Round2(totals.TotalCash),
		"totalMatched":  utils.Round2(totals.TotalMatched),
		"totalCredits":  utils.Round2(totals.TotalCredits),
		"activeMatches": activeMatches,
	})
}
