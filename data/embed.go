// Package data carries the SQL used to prepare a fresh database server for beedb.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/001-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/postgres/001-ddl-tables.sql
var InitdbPostgresTables string

// InitdbTables returns the table DDL for dbType, empty for dialects without a script
func InitdbTables(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return InitdbMariaDBTables
	case "postgres", "postgresql":
		return InitdbPostgresTables
	}
	return ""
}
