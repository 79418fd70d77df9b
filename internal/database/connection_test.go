package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/beedb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":      "mysql",
		"mariadb":    "mysql",
		"postgres":   "postgres",
		"postgresql": "postgres",
		"sqlite":     "sqlite",
		"sqlserver":  "sqlserver",
		"mssql":      "sqlserver",
	}

	for dbType, want := range cases {
		cfg := &config.Config{DBType: dbType, DBHost: "localhost", DBPort: "1", DBDatabase: "beedb", DBUser: "bee"}
		dialector, err := Dialector(cfg)
		require.NoError(t, err, dbType)
		assert.Equal(t, want, dialector.Name(), dbType)
	}
}

func TestDialectorUnsupported(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestConnectSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "beedb.sqlite"),
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"hives", "observations", "global_notes", "activity_counters"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("hives", "idx_hive_user_number"))
	assert.True(t, db.Migrator().HasIndex("observations", "idx_observation_hive_date"))
}
