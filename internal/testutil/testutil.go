// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"tierlist/backend/internal/database"
	"tierlist/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// NewPostgresDB starts a PostgreSQL testcontainer. The test is skipped unless
// TIERLIST_PG_INTEGRATION=1.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("TIERLIST_PG_INTEGRATION") != "1" {
		t.Skip("set TIERLIST_PG_INTEGRATION=1 to run postgres integration tests")
	}

	ctx := context.Background()
	container, err := tcPostgres.Run(ctx,
		"postgres:16-alpine",
		tcPostgres.WithDatabase("tierlist_test"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// SeedTiers inserts S, A and B tiers with ids 1..3.
func SeedTiers(t *testing.T, db *gorm.DB) []models.Tier {
	t.Helper()
	tiers := []models.Tier{
		{ID: 1, Label: "S", RankOrder: 1},
		{ID: 2, Label: "A", RankOrder: 2},
		{ID: 3, Label: "B", RankOrder: 3},
	}
	if err := db.Create(&tiers).Error; err != nil {
		t.Fatalf("failed to seed tiers: %v", err)
	}
	return tiers
}

// CreateProfile provisions a profile row and returns its user id.
func CreateProfile(t *testing.T, db *gorm.DB, role string) uuid.UUID {
	t.Helper()
	profile := models.Profile{ID: uuid.New(), Role: role}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile.ID
}

// CreateGame inserts a game in tierID and returns it.
func CreateGame(t *testing.T, db *gorm.DB, name string, tierID uint) models.Game {
	t.Helper()
	game := models.Game{Name: name, TierID: tierID}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return game
}

// CreateTag inserts a tag and returns it.
func CreateTag(t *testing.T, db *gorm.DB, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	return tag
}
