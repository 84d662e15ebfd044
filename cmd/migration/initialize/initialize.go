package initialize

import (
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

// InitializeTables creates or updates the three record tables. Forms evolve
// inside the JSON payload columns, so this is the only schema management the
// service needs.
func InitializeTables(db *gorm.DB, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Creating database tables")

	err := db.AutoMigrate(
		&Assessment{},
		&OnePageInsurance{},
		&UserSettings{},
	)
	if err != nil {
		return log.Err("failed to migrate tables", err)
	}

	log.Info("Table initialization complete")
	return nil
}
