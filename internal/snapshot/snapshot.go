// Package snapshot serializes the full dataset to a transportable JSON
// document and restores it.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/store"
)

// Document is a full point-in-time export of all persisted collections.
type Document struct {
	Products  []model.Product  `json:"products"`
	Movements []model.Movement `json:"movements"`
	Users     []model.User     `json:"users"`
}

// Export reads all three collections in full. The read is point-in-time per
// collection with no isolation across collections; acceptable under the
// single-writer model.
func Export(ctx context.Context, db *sql.DB) (*Document, error) {
	products, err := store.ListProducts(ctx, db)
	if err != nil {
		return nil, err
	}
	movements, err := store.ListMovements(ctx, db)
	if err != nil {
		return nil, err
	}
	users, err := store.ListUsers(ctx, db)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.Product{}
	}
	if movements == nil {
		movements = []model.Movement{}
	}
	if users == nil {
		users = []model.User{}
	}
	return &Document{Products: products, Movements: movements, Users: users}, nil
}

// Import clears all three collections, then writes every record present in
// the document back into its collection. Absent arrays are treated as empty.
//
// Import is not atomic: each clear and each put commits on its own, so a
// failure partway through leaves a mixed dataset behind. The error is
// surfaced as-is so the caller knows the restore did not complete; it is
// never masked. Callers must refresh projections and re-run the admin
// bootstrap afterwards.
func Import(ctx context.Context, db *sql.DB, doc *Document) error {
	for _, collection := range store.Collections {
		if err := store.Clear(ctx, db, collection); err != nil {
			return fmt.Errorf("clearing %s: %w", collection, err)
		}
	}

	for i := range doc.Products {
		if err := store.PutProduct(ctx, db, &doc.Products[i]); err != nil {
			return fmt.Errorf("restoring product %s: %w", doc.Products[i].ID, err)
		}
	}
	for i := range doc.Movements {
		if err := store.PutMovement(ctx, db, &doc.Movements[i]); err != nil {
			return fmt.Errorf("restoring movement %s: %w", doc.Movements[i].ID, err)
		}
	}
	for i := range doc.Users {
		if err := store.PutUser(ctx, db, &doc.Users[i]); err != nil {
			return fmt.Errorf("restoring user %s: %w", doc.Users[i].ID, err)
		}
	}
	return nil
}
