package db

import (
	"database/sql"
	"fmt"
)

// schema holds the three record collections plus a settings table.
// Each collection is an independent key-value table keyed by the record id,
// with the full record stored as a JSON document. There is deliberately no
// foreign key between them: every store operation commits its own
// single-collection transaction and nothing spans collections atomically.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id  TEXT PRIMARY KEY,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS movements (
    id  TEXT PRIMARY KEY,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id  TEXT PRIMARY KEY,
    doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
