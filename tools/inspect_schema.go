// inspect_schema prints the SQLite DDL GORM generates for the beedb models.
// Compare its output with data/initdb when the models change.
package main

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/beedb/internal/database"
	"github.com/localnerve/beedb/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: database.NewLogger(logger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open in-memory database")
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate models")
	}

	var tables []string
	if err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&tables).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to list tables")
	}

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)

		var ddl []string
		if err := db.Raw("SELECT sql FROM sqlite_master WHERE tbl_name = ? AND sql IS NOT NULL ORDER BY type DESC, name", table).
			Scan(&ddl).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("Failed to read schema")
		}
		for _, stmt := range ddl {
			fmt.Println(stmt + ";")
		}
	}
}
