package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/onnuri/inventory/internal/errs"
)

// Open opens a SQLite database connection and configures pragmas.
// Failures wrap errs.ErrStorageUnavailable: there is no degraded mode,
// every collection lives in this one file.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %v: %w", err, errs.ErrStorageUnavailable)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %v: %w", p, err, errs.ErrStorageUnavailable)
		}
	}

	return db, nil
}
