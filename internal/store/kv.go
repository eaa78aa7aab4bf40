// Package store is the durable owner of the three record collections.
// Each collection is a SQLite table holding JSON documents keyed by id.
// Every operation runs as one storage-native transaction scoped to a single
// collection; no operation spans collections atomically. The ledger engine
// works around that constraint by ordering its writes (movement first).
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/onnuri/inventory/internal/errs"
)

// Collection names.
const (
	CollectionProducts  = "products"
	CollectionMovements = "movements"
	CollectionUsers     = "users"
)

// Collections lists all record collections in clear/import order.
var Collections = []string{CollectionProducts, CollectionMovements, CollectionUsers}

func validCollection(name string) error {
	switch name {
	case CollectionProducts, CollectionMovements, CollectionUsers:
		return nil
	}
	return fmt.Errorf("unknown collection %q", name)
}

// putDoc inserts or replaces a record keyed by id.
func putDoc(ctx context.Context, db *sql.DB, collection, id string, record any) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", collection, err)
	}
	_, err = db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET doc = excluded.doc`, collection),
		id, string(doc),
	)
	if err != nil {
		return errs.StorageIO("writing "+collection+" record", err)
	}
	return nil
}

// getDoc reads the record with the given id into out.
// Returns false with a nil error when the record is absent.
func getDoc(ctx context.Context, db *sql.DB, collection, id string, out any) (bool, error) {
	if err := validCollection(collection); err != nil {
		return false, err
	}
	var doc string
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = ?`, collection), id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errs.StorageIO("reading "+collection+" record", err)
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return false, errs.StorageIO("decoding "+collection+" record", err)
	}
	return true, nil
}

// forEachDoc streams every record document in the collection to fn.
func forEachDoc(ctx context.Context, db *sql.DB, collection string, fn func(doc []byte) error) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT doc FROM %s`, collection))
	if err != nil {
		return errs.StorageIO("listing "+collection, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return errs.StorageIO("scanning "+collection+" record", err)
		}
		if err := fn([]byte(doc)); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return errs.StorageIO("listing "+collection, err)
	}
	return nil
}

// deleteDoc removes the record with the given id. Absent ids are a no-op.
func deleteDoc(ctx context.Context, db *sql.DB, collection, id string) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, collection), id)
	if err != nil {
		return errs.StorageIO("deleting "+collection+" record", err)
	}
	return nil
}

// Clear removes every record from the collection.
func Clear(ctx context.Context, db *sql.DB, collection string) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, collection))
	if err != nil {
		return errs.StorageIO("clearing "+collection, err)
	}
	return nil
}
