package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/model"
)

// PutMovement inserts or replaces a movement record. Movements are immutable
// once written; replacement only happens on snapshot import.
func PutMovement(ctx context.Context, db *sql.DB, m *model.Movement) error {
	return putDoc(ctx, db, CollectionMovements, m.ID, m)
}

// GetMovement returns a movement by ID, or nil if absent.
func GetMovement(ctx context.Context, db *sql.DB, id string) (*model.Movement, error) {
	m := &model.Movement{}
	found, err := getDoc(ctx, db, CollectionMovements, id, m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return m, nil
}

// ListMovements returns every movement record.
func ListMovements(ctx context.Context, db *sql.DB) ([]model.Movement, error) {
	var movements []model.Movement
	err := forEachDoc(ctx, db, CollectionMovements, func(doc []byte) error {
		var m model.Movement
		if err := json.Unmarshal(doc, &m); err != nil {
			return errs.StorageIO("decoding movement record", err)
		}
		movements = append(movements, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// ListProductMovements returns every movement referencing the given product.
func ListProductMovements(ctx context.Context, db *sql.DB, productID string) ([]model.Movement, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT doc FROM movements WHERE json_extract(doc, '$.product_id') = ?`,
		productID,
	)
	if err != nil {
		return nil, errs.StorageIO("listing product movements", err)
	}
	defer rows.Close()

	var movements []model.Movement
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, errs.StorageIO("scanning movement record", err)
		}
		var m model.Movement
		if err := json.Unmarshal([]byte(doc), &m); err != nil {
			return nil, errs.StorageIO("decoding movement record", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.StorageIO("listing product movements", err)
	}
	return movements, nil
}

// DeleteMovement removes a movement record. Not used by the ledger, whose
// history is append-only; it completes the per-collection adapter contract.
func DeleteMovement(ctx context.Context, db *sql.DB, id string) error {
	return deleteDoc(ctx, db, CollectionMovements, id)
}
