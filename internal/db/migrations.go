package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: index movements by the referenced product id so history
	// lookups and replay-based reconciliation don't scan the whole table.
	`CREATE INDEX IF NOT EXISTS idx_movements_product
	     ON movements(json_extract(doc, '$.product_id'))`,
	// Migration 2: index users by username for login lookups.
	`CREATE INDEX IF NOT EXISTS idx_users_username
	     ON users(json_extract(doc, '$.username'))`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
