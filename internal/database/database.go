package database

import (
	"log"
	"os"
	"time"

	"tierlist/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the connection to the managed Postgres store.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established.")
	return db, nil
}

// Migrate creates or updates the tier list tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Tier{}, &models.Tag{}, &models.Game{}, &models.GameTag{}, &models.Vote{}, &models.Profile{})
	if err != nil {
		return err
	}

	log.Println("Database migrated successfully.")
	return nil
}
