package testutil

import (
	"testing"
	"time"

	"github.com/localnerve/beedb/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB creates a migrated in-memory SQLite database for one test
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every connection to ":memory:" is a separate database, so keep exactly one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateHive inserts a hive directly, bypassing the upsert rules
func CreateHive(t *testing.T, db *gorm.DB, userID, number string, archived, deleted bool) models.Hive {
	t.Helper()

	hive := models.Hive{
		UserID:   userID,
		Number:   number,
		Colour:   "yellow",
		Place:    "field",
		Archived: archived,
	}
	if err := db.Create(&hive).Error; err != nil {
		t.Fatalf("Failed to create hive: %v", err)
	}
	// Zero-valued flags are skipped on insert because of their column defaults
	if deleted {
		if err := db.Model(&hive).Update("deleted", true).Error; err != nil {
			t.Fatalf("Failed to flag hive deleted: %v", err)
		}
	}
	return hive
}

// CreateObservation inserts an observation for hive on the given day
func CreateObservation(t *testing.T, db *gorm.DB, hive models.Hive, day time.Time, deleted bool) models.Observation {
	t.Helper()

	obs := models.Observation{
		HiveID: hive.ID,
		UserID: hive.UserID,
		Date:   models.NewDate(day),
		Queen:  1,
		Larva:  2,
		Egg:    3,
		Mood:   4,
		Size:   5,
		Varroa: 6,
	}
	if err := db.Create(&obs).Error; err != nil {
		t.Fatalf("Failed to create observation: %v", err)
	}
	if deleted {
		if err := db.Model(&obs).Update("deleted", true).Error; err != nil {
			t.Fatalf("Failed to flag observation deleted: %v", err)
		}
	}
	return obs
}

// CreateNote inserts a note directly
func CreateNote(t *testing.T, db *gorm.DB, userID, text string) models.GlobalNote {
	t.Helper()

	note := models.GlobalNote{UserID: userID, Note: text}
	if err := db.Create(&note).Error; err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}
	return note
}
