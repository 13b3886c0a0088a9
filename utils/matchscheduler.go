package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MATCH-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeMatchScheduler sets up the nightly maintenance job: stale-match
// auto-void plus daily summary emails to store owners.
func InitializeMatchScheduler() {
	if !config.AppConfig.SchedulerEnabled {
		logScheduler("Scheduler disabled by configuration")
		return
	}

	logScheduler("Initializing match scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.DailyJobSpec, func() {
		logScheduler("Running nightly maintenance...")
		ExpireStaleMatches()
		SendDailySummaries()
	}); err != nil {
		logScheduler("Failed to register nightly job: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Match scheduler started with spec " + config.AppConfig.DailyJobSpec)
}

// ExpireStaleMatches voids active match transactions older than the store's
// match_expiry_days setting. Stores configured with 0 never auto-void.
func ExpireStaleMatches() {
	db := database.Database.Db
	now := time.Now()

	var settings []models.StoreSetting
	if err := db.Where("match_expiry_days > 0 AND is_deleted = false").Find(&settings).Error; err != nil {
		logScheduler("Error fetching store settings: " + err.Error())
		return
	}

	for _, setting := range settings {
		cutoff := now.AddDate(0, 0, -setting.MatchExpiryDays)

		result := db.Model(&models.MatchTransaction{}).
			Where("store_id = ? AND status = ? AND created_at < ?",
				setting.StoreID, models.MatchStatusActive, cutoff).
			Updates(map[string]interface{}{
				"status": models.MatchStatusVoided,
				"notes": gorm.Expr("notes || ?",
					fmt.Sprintf(" [auto-voided after %d days]", setting.MatchExpiryDays)),
			})

		if result.Error != nil {
			logScheduler(fmt.Sprintf("Error expiring matches for store %d: %v", setting.StoreID, result.Error))
			continue
		}
		if result.RowsAffected > 0 {
			logScheduler(fmt.Sprintf("Store %d: auto-voided %d stale match(es) older than %d days",
				setting.StoreID, result.RowsAffected, setting.MatchExpiryDays))
		}
	}
}

// SendDailySummaries emails each store owner yesterday's totals.
func SendDailySummaries() {
	db := database.Database.Db
	yesterday := time.Now().AddDate(0, 0, -1)
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	day := dayStart.Format(models.MatchDayFormat)

	var stores []models.Store
	if err := db.Where("is_active = true AND is_deleted = false").Find(&stores).Error; err != nil {
		logScheduler("Error fetching stores: " + err.Error())
		return
	}

	for _, store := range stores {
		var owner models.User
		if err := db.Where("store_id = ? AND role = ? AND is_deleted = false", store.ID, models.RoleOwner).
			First(&owner).Error; err != nil || owner.Email == "" {
			continue
		}

		var matchesCreated int64
		var matchedTotal float64
		db.Model(&models.MatchTransaction{}).
			Where("store_id = ? AND created_at >= ? AND created_at < ?", store.ID, dayStart, dayEnd).
			Count(&matchesCreated)
		db.Model(&models.MatchTransaction{}).
			Where("store_id = ? AND created_at >= ? AND created_at < ?", store.ID, dayStart, dayEnd).
			Select("COALESCE(SUM(matched_amount), 0)").Scan(&matchedTotal)

		var cashIn, cashOut float64
		db.Model(&models.CashLog{}).
			Where("store_id = ? AND direction = ? AND log_date >= ? AND log_date < ? AND is_deleted = false",
				store.ID, models.CashDirectionIn, dayStart, dayEnd).
			Select("COALESCE(SUM(amount), 0)").Scan(&cashIn)
		db.Model(&models.CashLog{}).
			Where("store_id = ? AND direction = ? AND log_date >= ? AND log_date < ? AND is_deleted = false",
				store.ID, models.CashDirectionOut, dayStart, dayEnd).
			Select("COALESCE(SUM(amount), 0)").Scan(&cashOut)

		if err := SendDailySummaryEmail(owner.Email, owner.Name, store.Name, day,
			matchesCreated, cashIn, cashOut, matchedTotal); err != nil {
			logScheduler(fmt.Sprintf("Error emailing summary for store %d: %v", store.ID, err))
		}
	}
}
