package cashflowController

import (
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// CashLogRequest is the validated payload for logging a cash movement.
type CashLogRequest struct {
	MachineID *uint   `json:"machineId"`
	Direction string  `json:"direction"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
}

// LogCash records a cash movement at the store.
func LogCash(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCashLog").(*CashLogRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.MachineID != nil {
		var machine models.Machine
		if err := db.Where("id = ? AND store_id = ? AND is_deleted = false", *reqData.MachineID, storeId).
			First(&machine).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Machine not found!", nil)
		}
	}

	category := reqData.Category
	if category == "" {
		category = models.CashCategoryOther
	}

	entry := models.CashLog{
		StoreID:    storeId,
		MachineID:  reqData.MachineID,
		LoggedByID: &userId,
		Direction:  models.CashDirection(reqData.Direction),
		Category:   category,
		Amount:     utils.Round2(reqData.Amount),
		Notes:      reqData.Notes,
		LogDate:    time.Now(),
	}

	if err := db.Create(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log cash entry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Cash entry logged!", entry)
}

// ListCash returns the store's cash log, newest first, with optional
// direction and date-bucket filters.
func ListCash(c *fiber.Ctx) error {
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

	query := db.Model(&models.CashLog{}).Where("store_id = ? AND is_deleted = false", storeId)

	if direction := c.Query("direction"); direction != "" {
		query = query.Where("direction = ?", direction)
	}
	if bucket := c.Query("range", utils.RangeAll); bucket != utils.RangeAll {
		if start, end, ok := utils.BucketRange(bucket, time.Now()); ok {
			query = query.Where("log_date BETWEEN ? AND ?", start, end)
		}
	}

	var total int64
	query.Count(&total)

	entries := make([]models.CashLog, 0)
	if err := query.Order("log_date DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cash log!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cash log fetched!", fiber.Map{
		"entries": entries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// DailySummary aggregates a single day's cash in, cash out and net.
// Defaults to today; accepts ?date=YYYY-MM-DD.
func DailySummary(c *fiber.Ctx) error {
	storeId := c.Locals("storeId").(uint)
	db := database.Database.Db

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(models.MatchDayFormat, dateStr, time.Local)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date, expected YYYY-MM-DD!", nil)
		}
		day = parsed
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var cashIn, cashOut float64
	if err := db.Model(&models.CashLog{}).
		Where("store_id = ? AND direction = ? AND log_date >= ? AND log_date < ? AND is_deleted = false",
			storeId, models.CashDirectionIn, dayStart, dayEnd).
		Select("COALESCE(SUM(amount), 0)").Scan(&cashIn).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute summary!", nil)
	}
	if err := db.Model(&models.CashLog{}).
		Where("store_id = ? AND direction = ? AND log_date >= ? AND log_date < ? AND is_deleted = false",
			storeId, models.CashDirectionOut, dayStart, dayEnd).
		Select("COALESCE(SUM(amount), 0)").Scan(&cashOut).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute summary!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily summary fetched!", fiber.Map{
		"date":    dayStart.Format(models.MatchDayFormat),
		"cashIn":  utils.Round2(cashIn),
		"cashOut": utils.Round2(cashOut),
		"net":     utils.Round2(cashIn - cashOut),
	})
}
