package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDb opens an in-memory SQLite database, runs migrations and
// installs it as the global instance. Package tests call this in place of
// ConnectDb; each call starts from an empty schema.
func ConnectTestDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}

	// Drop leftovers from a previous test in the same process
	dropAll(db)

	RunMigrations(db)

	Database = DbInstance{Db: db}
	return db
}

func dropAll(db *gorm.DB) {
	tables := []string{
		"match_transactions",
		"bonus_transactions",
		"cash_logs",
		"login_trackings",
		"machines",
		"customers",
		"users",
		"store_settings",
		"stores",
	}
	for _, t := range tables {
		db.Exec("DROP TABLE IF EXISTS " + t)
	}
}
